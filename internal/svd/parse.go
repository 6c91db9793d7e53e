package svd

import (
	"fmt"
	"strconv"
	"strings"

	"devgen/internal/model"
)

// scanUint parses the numeric spellings SVD files mix freely: decimal,
// 0x hex, and #-prefixed binary.
func scanUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}

	if strings.HasPrefix(s, "#") {
		return strconv.ParseUint(s[1:], 2, 64)
	}

	return strconv.ParseUint(s, 0, 64)
}

func scanUintDefault(s *string, def uint64) (uint64, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def, nil
	}

	return scanUint(*s)
}

func scanInt(s string) (int, error) {
	v, err := scanUint(s)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// scanBool accepts the 1/0 and true/false spellings seen in the wild.
func scanBool(s string) bool {
	switch strings.TrimSpace(s) {
	case "1", "true", "True":
		return true
	}

	return false
}

// bitRange extracts a field's [lsb, msb] from whichever of the three SVD
// notations the file uses: bitOffset+bitWidth, lsb+msb, or "[msb:lsb]".
func bitRange(f *fieldElement) (lsb, msb int, err error) {
	switch {
	case f.BitRange != nil:
		r := strings.Trim(strings.TrimSpace(*f.BitRange), "[]")

		parts := strings.SplitN(r, ":", 2)
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("field %s: malformed bitRange %q", f.Name, *f.BitRange)
		}

		if msb, err = scanInt(parts[0]); err != nil {
			return 0, 0, fmt.Errorf("field %s: %w", f.Name, err)
		}

		if lsb, err = scanInt(parts[1]); err != nil {
			return 0, 0, fmt.Errorf("field %s: %w", f.Name, err)
		}

		return lsb, msb, nil

	case f.Lsb != nil && f.Msb != nil:
		if lsb, err = scanInt(*f.Lsb); err != nil {
			return 0, 0, fmt.Errorf("field %s: %w", f.Name, err)
		}

		if msb, err = scanInt(*f.Msb); err != nil {
			return 0, 0, fmt.Errorf("field %s: %w", f.Name, err)
		}

		return lsb, msb, nil

	case f.BitOffset != nil:
		if lsb, err = scanInt(*f.BitOffset); err != nil {
			return 0, 0, fmt.Errorf("field %s: %w", f.Name, err)
		}

		width := 1
		if f.BitWidth != nil {
			if width, err = scanInt(*f.BitWidth); err != nil {
				return 0, 0, fmt.Errorf("field %s: %w", f.Name, err)
			}
		}

		return lsb, lsb + width - 1, nil
	}

	return 0, 0, fmt.Errorf("field %s: no bit range declared", f.Name)
}

// parseDim converts the dim element triple. Presence of <dim> alone is
// enough to flag the group as present: a missing increment is carried
// through as zero and rejected later as a structural inconsistency.
func parseDim(dim, increment *string, indexName string) (*model.DimGroup, error) {
	if dim == nil {
		return nil, nil
	}

	count, err := scanInt(*dim)
	if err != nil {
		return nil, fmt.Errorf("dim: %w", err)
	}

	inc, err := scanUintDefault(increment, 0)
	if err != nil {
		return nil, fmt.Errorf("dimIncrement: %w", err)
	}

	return &model.DimGroup{Count: count, Increment: inc, IndexName: indexName}, nil
}

// parseProps folds an element's size/access declarations over the
// inherited defaults.
func parseProps(inherited model.Properties, size, access *string) (model.Properties, error) {
	out := inherited

	if size != nil {
		v, err := scanInt(*size)
		if err != nil {
			return out, fmt.Errorf("size: %w", err)
		}

		out.Size = v
	}

	if access != nil {
		a, err := model.ParseAccess(strings.TrimSpace(*access))
		if err != nil {
			return out, err
		}

		out.Access = a
		out.AccessSet = true
	}

	return out, nil
}
