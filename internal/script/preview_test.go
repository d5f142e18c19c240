package script

import (
	"testing"

	"github.com/martinsound/stagemix/internal/types"
)

func TestFirstLinePreview(t *testing.T) {
	elements := []types.Element{
		{Kind: types.ElementCharacter, Text: "HORTON"},
		{Kind: types.ElementDialogue, Text: "A person's a person, no matter how small."},
		{Kind: types.ElementDialogue, Text: "second line"},
	}
	got := FirstLinePreview(elements, 20)
	if got != "A person's a person,..." {
		t.Fatalf("unexpected preview: %q", got)
	}
}

func TestFirstLinePreviewShortLine(t *testing.T) {
	elements := []types.Element{
		{Kind: types.ElementDialogue, Text: "Hello."},
	}
	if got := FirstLinePreview(elements, 20); got != "Hello." {
		t.Fatalf("short line should be untruncated, got %q", got)
	}
}

func TestLastLinePreview(t *testing.T) {
	elements := []types.Element{
		{Kind: types.ElementDialogue, Text: "first line"},
		{Kind: types.ElementDialogue, Text: "A person's a person, no matter how small."},
		{Kind: types.ElementSceneHeading, Text: "INT. JUNGLE"},
	}
	got := LastLinePreview(elements, 10)
	if got != "...how small." {
		t.Fatalf("unexpected preview: %q", got)
	}
}

func TestPreviewNoDialogue(t *testing.T) {
	elements := []types.Element{
		{Kind: types.ElementCharacter, Text: "HORTON"},
		{Kind: types.ElementComment, Text: "Page 3"},
	}
	if got := FirstLinePreview(elements, 20); got != "" {
		t.Fatalf("expected empty preview, got %q", got)
	}
	if got := LastLinePreview(elements, 20); got != "" {
		t.Fatalf("expected empty preview, got %q", got)
	}
}
