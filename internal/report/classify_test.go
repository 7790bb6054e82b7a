package report

import "testing"

func TestIsContentLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want bool
	}{
		{"work header", "1  T-000123    My Song Title    Active    2020", true},
		{"right holder", "1  12345  Jane Doe    CA  33,33", true},
		{"missing identifier marker", "7  -    Untitled    Pending    2019", true},
		{"report title", "REPERTOIRE REPORT - FIRST QUARTER", false},
		{"page footer", "Page 3 of 12", false},
		{"empty", "", false},
		{"whitespace only", "    ", false},
		{"leading whitespace", "   42  T-000777    Padded    Active    2021", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsContentLine(tc.line); got != tc.want {
				t.Errorf("IsContentLine(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestIsWorkLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want bool
	}{
		{"identifier prefix", "1  T-000123    My Song Title    Active    2020", true},
		{"missing identifier marker", "7  -    Untitled    Pending    2019", true},
		{"right holder", "1  12345  Jane Doe    CA  33,33", false},
		{"right holder with society", "1  67890  John Roe    ACME  E  66,67", false},
		{"page furniture", "Page 3 of 12", false},
		{"bare row number", "12", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWorkLine(tc.line); got != tc.want {
				t.Errorf("IsWorkLine(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}

	t.Run("work lines are always content lines", func(t *testing.T) {
		lines := []string{
			"1  T-000123    My Song Title    Active    2020",
			"7  -    Untitled    Pending    2019",
		}
		for _, line := range lines {
			if !IsContentLine(line) || !IsWorkLine(line) {
				t.Errorf("work line %q must satisfy both predicates", line)
			}
		}
	})
}
