package site

import (
	"strings"
	"testing"

	"github.com/healthgeo/gazetteer-tools/divisions"
	"github.com/healthgeo/gazetteer-tools/gazetteer"
)

func TestDefaultProfile(t *testing.T) {
	profile := Default()

	if len(profile.Levels) != 4 {
		t.Fatalf("Expected 4 levels, got %d", len(profile.Levels))
	}

	expectedColumns := []string{"loc_adm1", "loc_adm2", "loc_adm3", "VILLAGE_NAME"}
	for i, column := range expectedColumns {
		if profile.Levels[i].Column != column {
			t.Errorf("Expected level %d column %s, got %s", i, column, profile.Levels[i].Column)
		}
	}
	if profile.Levels[3].Name != "Village" || profile.Levels[3].Abbr != "V" {
		t.Errorf("Unexpected leaf level: %+v", profile.Levels[3])
	}

	if profile.SortKey == nil {
		t.Error("Expected a sort key")
	}
	if profile.FormatLeaf == nil {
		t.Error("Expected a leaf formatter")
	}
	if len(profile.LeafHeadings) != 4 || profile.LeafHeadings[0] != "Village name" {
		t.Errorf("Unexpected leaf headings: %v", profile.LeafHeadings)
	}
}

func TestCatchAllLast(t *testing.T) {
	testCases := []struct {
		name     string
		path     []string
		expected []string
	}{
		{"ordinary names unchanged", []string{"Kailahun", "Luawa"}, []string{"Kailahun", "Luawa"}},
		{"normalized catch-all", []string{"Kailahun", "(other)"}, []string{"Kailahun", "~"}},
		{"raw catch-all", []string{"OTHER"}, []string{"~"}},
		{"similar names untouched", []string{"OTHERS", "others"}, []string{"OTHERS", "others"}},
		{"empty path", []string{}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CatchAllLast(tc.path)
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected %v, got %v", tc.expected, got)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Errorf("Expected element %d to be %q, got %q", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestCatchAllLastDoesNotMutatePath(t *testing.T) {
	path := []string{"Kailahun", "(other)"}
	CatchAllLast(path)
	if path[1] != "(other)" {
		t.Errorf("Input path was mutated: %v", path)
	}
}

func TestCatchAllVillageSortsLast(t *testing.T) {
	profile := Default()
	input := "loc_adm1,loc_adm2,loc_adm3,VILLAGE_NAME\n" +
		"Kailahun,Luawa,Gbela,OTHER\n" +
		"Kailahun,Luawa,Gbela,Zimmi\n" +
		"Kailahun,Luawa,Gbela,Bandasuma\n"

	forest, lists, err := divisions.ReadDivisions(strings.NewReader(input), profile.Levels)
	if err != nil {
		t.Fatalf("Failed to read divisions: %v", err)
	}
	sorted, ranks := divisions.Number(forest, lists, profile.SortKey)

	villages := sorted[3]
	if len(villages) != 3 {
		t.Fatalf("Expected 3 villages, got %d", len(villages))
	}

	expectedOrder := []string{"Bandasuma", "Zimmi", "(other)"}
	for i, name := range expectedOrder {
		if got := forest.Node(villages[i]).Name; got != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, got)
		}
	}
	if ranks[villages[2]] != 3 {
		t.Errorf("Expected the catch-all to take the last rank, got %d", ranks[villages[2]])
	}
}

func TestFitLength(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"short text unchanged", "Njala", 24, "Njala"},
		{"exact length unchanged", strings.Repeat("a", 24), 24, strings.Repeat("a", 24)},
		{"long text truncated", strings.Repeat("a", 25), 24, strings.Repeat("a", 21) + "..."},
		{"multibyte runes counted once", strings.Repeat("é", 30), 24, strings.Repeat("é", 21) + "..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := fitLength(tc.input, tc.maxLength)
			if got != tc.expected {
				t.Errorf("fitLength(%q, %d) = %q, want %q", tc.input, tc.maxLength, got, tc.expected)
			}
		})
	}
}

func TestFormatVillageRow(t *testing.T) {
	row := divisions.Record{
		"VILLAGE_NAME":         "Njala",
		"ALT_VILLAGE_NAME":     " Foya ",
		"HISTORICAL_NAME":      "Kpetema",
		"CHIEF_NAME":           "Chief Momoh Kallon Brima",
		"VILLAGE_NAME_MEANING": "place by the water",
	}

	leaf := FormatVillageRow(row)

	if leaf.Name != "Njala" {
		t.Errorf("Expected name Njala, got %q", leaf.Name)
	}
	if leaf.Meaning != "place by the water" {
		t.Errorf("Expected meaning to pass through, got %q", leaf.Meaning)
	}

	if len(leaf.OtherNames) != 2 {
		t.Fatalf("Expected 2 other names, got %v", leaf.OtherNames)
	}
	if leaf.OtherNames[0] != "Foya" {
		t.Errorf("Expected trimmed alternate name Foya, got %q", leaf.OtherNames[0])
	}
	if leaf.OtherNames[1] != "Kpetema (old)" {
		t.Errorf("Expected historical name marked (old), got %q", leaf.OtherNames[1])
	}

	// "Momoh Kallon Brima" is 3 words and 18 characters, so no wrap
	if len(leaf.ChiefLines) != 1 || leaf.ChiefLines[0] != "Momoh Kallon Brima" {
		t.Errorf("Expected the honorific dropped without wrapping, got %v", leaf.ChiefLines)
	}
}

func TestFormatVillageRowChiefWrapping(t *testing.T) {
	testCases := []struct {
		name     string
		chief    string
		expected []string
	}{
		{"empty", "", nil},
		{"honorific only", "Chief", nil},
		{"short name kept whole", "Momoh Kallon", []string{"Momoh Kallon"}},
		{
			"long name with two words stays whole",
			"Bockarie Kpendevokaiima",
			[]string{"Bockarie Kpendevokaiima"},
		},
		{
			"long name wraps after second word",
			"Momoh Kallon Brima Sahr",
			[]string{"Momoh Kallon", "Brima Sahr"},
		},
		{
			"honorific dropped before the length check",
			"Chief Alpha Beta Gamma Delta",
			[]string{"Alpha Beta", "Gamma Delta"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leaf := FormatVillageRow(divisions.Record{"CHIEF_NAME": tc.chief})
			if len(leaf.ChiefLines) != len(tc.expected) {
				t.Fatalf("Expected %v, got %v", tc.expected, leaf.ChiefLines)
			}
			for i := range tc.expected {
				if leaf.ChiefLines[i] != tc.expected[i] {
					t.Errorf("Expected line %d to be %q, got %q", i, tc.expected[i], leaf.ChiefLines[i])
				}
			}
		})
	}
}

func TestFormatVillageRowTruncatesLongNames(t *testing.T) {
	longName := strings.Repeat("x", 30)
	row := divisions.Record{
		"VILLAGE_NAME":     "Njala",
		"ALT_VILLAGE_NAME": longName,
		"HISTORICAL_NAME":  longName,
	}

	leaf := FormatVillageRow(row)

	expected := strings.Repeat("x", 21) + "..."
	if leaf.OtherNames[0] != expected {
		t.Errorf("Expected truncated alternate name %q, got %q", expected, leaf.OtherNames[0])
	}
	if leaf.OtherNames[1] != expected+" (old)" {
		t.Errorf("Expected (old) suffix applied after fitting, got %q", leaf.OtherNames[1])
	}
}

func TestFormatVillageRowMissingColumns(t *testing.T) {
	leaf := FormatVillageRow(divisions.Record{"VILLAGE_NAME": "Njala"})

	if leaf.Name != "Njala" {
		t.Errorf("Expected name Njala, got %q", leaf.Name)
	}
	if len(leaf.OtherNames) != 0 {
		t.Errorf("Expected no other names, got %v", leaf.OtherNames)
	}
	if len(leaf.ChiefLines) != 0 {
		t.Errorf("Expected no chief lines, got %v", leaf.ChiefLines)
	}
	if leaf.Meaning != "" {
		t.Errorf("Expected empty meaning, got %q", leaf.Meaning)
	}
}

func TestFormatVillageRowIsPure(t *testing.T) {
	row := divisions.Record{
		"VILLAGE_NAME": "Njala",
		"CHIEF_NAME":   "Chief Momoh Kallon Brima Sahr",
	}

	first := FormatVillageRow(row)
	second := FormatVillageRow(row)

	if row.Get("CHIEF_NAME") != "Chief Momoh Kallon Brima Sahr" {
		t.Errorf("Source record was mutated: %q", row.Get("CHIEF_NAME"))
	}
	if len(first.ChiefLines) != len(second.ChiefLines) {
		t.Errorf("Formatter is not stable: %v then %v", first.ChiefLines, second.ChiefLines)
	}
}

var _ gazetteer.LeafFormatter = FormatVillageRow
