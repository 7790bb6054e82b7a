package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"repertorio/internal/models"
)

// SourceSystem names the registry whose reports this package understands.
// Every extracted right holder carries one source reference pointing here.
const SourceSystem = "ECAD"

// roleCodes maps the report's category codes to legal roles. A code outside
// this table is a format error, never stored unresolved.
var roleCodes = map[string]models.Role{
	"CA": models.RoleAuthor,
	"E":  models.RolePublisher,
	"V":  models.RoleVersionist,
	"SE": models.RoleSubPublisher,
}

var (
	// anchorPattern locates the role-code/share pair: a 1-2 letter code,
	// 1-3 spaces, then a number. The pair is the most visually regular part
	// of every right-holder line regardless of which optional columns
	// precede it, so the line is split there first.
	anchorPattern = regexp.MustCompile(`\s([A-Z]{1,2}) {1,3}(\d[\d.,]*)`)

	// leftColumnPattern splits the block left of the anchor on runs of 2+
	// whitespace. Right-holder sub-columns sit tighter than work columns,
	// hence the narrower threshold.
	leftColumnPattern = regexp.MustCompile(`\s{2,}`)

	registryNumberPattern = regexp.MustCompile(`^[\d.]+`)
	societyCodePattern    = regexp.MustCompile(`[A-Z]+$`)
)

// ParseRightHolder converts a right-holder detail line into a RightHolder
// record. It fails with an error matching [ErrFormat] when the anchor is
// missing, the role code is unknown, or the left block resolves to a column
// count outside {2,3,4}.
//
// Trailing columns after the share (dates, hyperlinks) are not consumed;
// only the row number, the left block, and the anchor pair are read.
func ParseRightHolder(line string) (*models.RightHolder, error) {
	loc := anchorPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, anchorError(line)
	}
	code := line[loc[2]:loc[3]]
	shareToken := line[loc[4]:loc[5]]

	role, ok := roleCodes[code]
	if !ok {
		return nil, unknownRoleError(line, code)
	}

	share, err := parseShare(shareToken)
	if err != nil {
		return nil, fmt.Errorf("%w: share %q in line %q", ErrFormat, shareToken, line)
	}

	left := strings.TrimSpace(line[:loc[0]])
	m := rowPrefixPattern.FindStringSubmatch(left)
	if m == nil {
		return nil, columnCountError(line, 0)
	}
	rowID := m[1]
	tokens := leftColumnPattern.Split(m[2], -1)

	holder, err := resolveColumns(line, loc[0], tokens)
	if err != nil {
		return nil, err
	}

	holder.Role = role
	holder.Share = share
	holder.SourceReferences = []models.SourceReference{
		{SourceSystemName: SourceSystem, SourceRecordID: rowID},
	}
	return holder, nil
}

// resolveColumns disambiguates the left-block tokens (row number already
// removed) into identifier, name, and the optional pseudonym / registry
// number / society fields. anchorStart bounds the region searched when a
// token has to be re-located for the positional tie-break.
func resolveColumns(line string, anchorStart int, tokens []string) (*models.RightHolder, error) {
	holder := &models.RightHolder{}

	switch len(tokens) {
	case 2:
		holder.RegistryPersonID, holder.Name = tokens[0], tokens[1]
	case 3:
		holder.RegistryPersonID, holder.Name = tokens[0], tokens[1]
		left, right := surroundingGaps(line, anchorStart, tokens[2])
		if societyPosition(left, right) {
			holder.SocietyName = tokens[2]
		} else {
			holder.Pseudonyms = []models.Pseudonym{{Name: tokens[2], IsPrimary: true}}
		}
	case 4:
		holder.RegistryPersonID, holder.Name = tokens[0], tokens[1]
		holder.Pseudonyms = []models.Pseudonym{{Name: tokens[2], IsPrimary: true}}
		holder.RegistryNumber, holder.SocietyName = splitRegistryAndSociety(tokens[3])
	default:
		return nil, columnCountError(line, len(tokens))
	}

	return holder, nil
}

// societyPosition classifies the ambiguous third column by horizontal
// offset. Fields in the source are right-aligned, so a token whose left
// whitespace run is strictly wider than its right one sits up against the
// right-hand column group: a society code, not a pseudonym.
func societyPosition(leftGap, rightGap int) bool {
	return leftGap > rightGap
}

// surroundingGaps re-locates token in the original line (rightmost match
// left of the anchor) and measures the whitespace runs on either side.
func surroundingGaps(line string, anchorStart int, token string) (left, right int) {
	idx := strings.LastIndex(line[:anchorStart], token)
	if idx < 0 {
		return 0, 0
	}
	for i := idx - 1; i >= 0 && line[i] == ' '; i-- {
		left++
	}
	for i := idx + len(token); i < len(line) && line[i] == ' '; i++ {
		right++
	}
	return left, right
}

// splitRegistryAndSociety unpacks the combined fourth column. Its two
// sub-fields are separated by a single space, too narrow for the 2-space
// column split: a leading digits-and-periods run is the registry (IPI-style)
// number with periods stripped, an uppercase run at the end is the society
// code. Either, both, or neither may be present.
func splitRegistryAndSociety(token string) (number, society string) {
	number = strings.ReplaceAll(registryNumberPattern.FindString(token), ".", "")
	society = societyCodePattern.FindString(token)
	return number, society
}

// parseShare normalizes the printed share value: periods are thousand
// separators, the comma is the decimal mark. The magnitude is preserved
// exactly as printed ("33,33" parses to 33.33, "100" to 100).
func parseShare(token string) (float64, error) {
	normalized := strings.ReplaceAll(token, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return strconv.ParseFloat(normalized, 64)
}
