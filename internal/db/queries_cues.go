package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/martinsound/stagemix/internal/types"
)

// dcaColumns returns the 24 slot column names in slot order, channels first.
func dcaColumns() []string {
	columns := make([]string, 0, 2*types.SlotCount)
	for i := 1; i <= types.SlotCount; i++ {
		columns = append(columns, fmt.Sprintf("dca%02dChannels", i))
	}
	for i := 1; i <= types.SlotCount; i++ {
		columns = append(columns, fmt.Sprintf("dca%02dLabel", i))
	}
	return columns
}

// NextCuePoint returns the next free cue point, spaced by 10 so cues can be
// inserted between existing ones later.
func NextCuePoint(db *sql.DB) (int, error) {
	row := db.QueryRow("SELECT COALESCE(MAX(point), 0) FROM cues")
	var maxPoint int
	if err := row.Scan(&maxPoint); err != nil {
		return 0, err
	}
	return maxPoint + 10, nil
}

// AddCue inserts a cue. A cue arriving with point 0 (the generator's
// provisional ordering) is assigned the next free point. Returns the point
// the cue was stored under.
func AddCue(db *sql.DB, c types.Cue) (int, error) {
	point := c.Point
	if point == 0 {
		next, err := NextCuePoint(db)
		if err != nil {
			return 0, err
		}
		point = next
	}

	columns := append([]string{"number", "point", "name", "colour"}, dcaColumns()...)
	args := make([]any, 0, len(columns))
	args = append(args, c.Number, point, c.Name, c.Colour)
	for i := 0; i < types.SlotCount; i++ {
		args = append(args, nullable(c.Channels[i]))
	}
	for i := 0; i < types.SlotCount; i++ {
		args = append(args, nullable(c.Labels[i]))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO cues (%s) VALUES (%s)", strings.Join(columns, ", "), placeholders)
	if _, err := db.Exec(query, args...); err != nil {
		return 0, err
	}
	return point, nil
}

// GetCues returns all stored cues ordered by point.
func GetCues(db *sql.DB) ([]types.Cue, error) {
	columns := append([]string{"number", "point", "name", "colour"}, dcaColumns()...)
	query := fmt.Sprintf("SELECT %s FROM cues ORDER BY point", strings.Join(columns, ", "))
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cues []types.Cue
	for rows.Next() {
		var c types.Cue
		var name sql.NullString
		var colour sql.NullInt64
		slots := make([]sql.NullString, 2*types.SlotCount)

		dest := []any{&c.Number, &c.Point, &name, &colour}
		for i := range slots {
			dest = append(dest, &slots[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		c.Name = name.String
		c.Colour = int(colour.Int64)
		for i := 0; i < types.SlotCount; i++ {
			c.Channels[i] = slots[i].String
			c.Labels[i] = slots[types.SlotCount+i].String
		}
		cues = append(cues, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cues, nil
}

// DeleteCues removes every stored cue. Used before re-persisting a
// regenerated cue list.
func DeleteCues(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM cues")
	return err
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
