package sections

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/willf/bitset"

	"github.com/pgavlin/wade/wasm"
)

// rows:
// - section
//     - index, id, kind, name, payload bounds, size, repeated id flag

func dumpStats(w io.Writer, s *wasm.Scanner) error {
	type row struct {
		Index     int    `csv:"index"`
		ID        uint8  `csv:"id"`
		Kind      string `csv:"kind"`
		Name      string `csv:"name"`
		Start     int64  `csv:"start"`
		End       int64  `csv:"end"`
		Size      int64  `csv:"size"`
		Duplicate bool   `csv:"duplicate"`
	}

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)

	seen := bitset.New(256)
	for index := 0; s.Next(); index++ {
		section := s.Section()
		raw := section.GetRawSection()

		// Custom sections repeat legitimately; only repeated non-custom ids
		// are flagged.
		duplicate := false
		if raw.ID != wasm.SectionIDCustom {
			duplicate = seen.Test(uint(raw.ID))
			seen.Set(uint(raw.ID))
		}

		r := row{
			Index:     index,
			ID:        uint8(raw.ID),
			Kind:      raw.ID.String(),
			Start:     raw.Start,
			End:       raw.End,
			Size:      raw.End - raw.Start,
			Duplicate: duplicate,
		}
		if custom, ok := section.(*wasm.SectionCustom); ok {
			r.Name = custom.Name
		}

		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	return s.Error()
}
