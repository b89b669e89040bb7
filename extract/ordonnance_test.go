package extract

import "testing"

func str(s string) *string { return &s }

func TestOrdonnancePersonLine(t *testing.T) {
	e := NewOrdonnanceExtractor()

	rec := e.Extract("o.pdf", "Madame DUPONT Marie (12/03/1985)\nOeil Droit : -1,25\nOeil Gauche : +0,50")
	if rec.Title == nil || rec.FullName == nil || rec.Birthdate == nil {
		t.Fatal("expected the full person line to match")
	}
	if *rec.Title != "Madame" {
		t.Errorf("title = %q", *rec.Title)
	}
	if *rec.FullName != "DUPONT Marie" {
		t.Errorf("full name = %q", *rec.FullName)
	}
	if *rec.Birthdate != "12/03/1985" {
		t.Errorf("birthdate = %q", *rec.Birthdate)
	}
}

func TestOrdonnancePersonIsAtomic(t *testing.T) {
	e := NewOrdonnanceExtractor()

	// A title and name without the parenthesized birthdate is not a
	// person line: no partial extraction.
	rec := e.Extract("o.pdf", "Madame Dupont\nOeil Droit : +1,00")
	if rec.Title != nil || rec.FullName != nil || rec.Birthdate != nil {
		t.Error("expected title, name and birthdate all nil without a date")
	}
	if rec.EyeRight == nil {
		t.Error("eye value must extract independently of the person line")
	}
}

func TestOrdonnanceTitles(t *testing.T) {
	e := NewOrdonnanceExtractor()

	tests := []struct {
		text  string
		title string
		name  string
	}{
		{"Monsieur MARTIN Paul (01/01/1970)", "Monsieur", "MARTIN Paul"},
		{"Madame DURAND Anne-Laure (15/06/1992)", "Madame", "DURAND Anne-Laure"},
		{"Mlle PETIT Zoé (30/11/2001)", "Mlle", "PETIT Zoé"},
		{"M. O'NEILL Jean (09/09/1999)", "M.", "O'NEILL Jean"},
		{"Enfant LEROY Léa (03/04/2015)", "Enfant", "LEROY Léa"},
	}
	for _, tt := range tests {
		rec := e.Extract("o.pdf", tt.text)
		if rec.Title == nil || rec.FullName == nil {
			t.Errorf("%q: expected a match", tt.text)
			continue
		}
		if *rec.Title != tt.title {
			t.Errorf("%q: title = %q, want %q", tt.text, *rec.Title, tt.title)
		}
		if *rec.FullName != tt.name {
			t.Errorf("%q: name = %q, want %q", tt.text, *rec.FullName, tt.name)
		}
	}
}

func TestOrdonnanceEyeValues(t *testing.T) {
	e := NewOrdonnanceExtractor()

	tests := []struct {
		name  string
		text  string
		right *string
		left  *string
	}{
		{
			"comma becomes dot",
			"Oeil Droit : -1,25\nOeil Gauche : -2,75",
			str("-1.25"), str("-2.75"),
		},
		{
			"dot passes through",
			"Oeil Droit : +0.50\nOeil Gauche : 3.25",
			str("+0.50"), str("3.25"),
		},
		{
			"ligature spelling",
			"Œil Droit : +1,00\nŒil Gauche : +1,50",
			str("+1.00"), str("+1.50"),
		},
		{
			"integer values",
			"Oeil Droit : 2\nOeil Gauche : -3",
			str("2"), str("-3"),
		},
		{
			"one eye only",
			"Oeil Gauche : -0,75",
			nil, str("-0.75"),
		},
		{
			"no values",
			"rien à voir",
			nil, nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.Extract("o.pdf", tt.text)
			checkOptional(t, "eye_right", rec.EyeRight, tt.right)
			checkOptional(t, "eye_left", rec.EyeLeft, tt.left)
		})
	}
}

func checkOptional(t *testing.T, field string, got, want *string) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %q, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %q", field, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %q, want %q", field, *got, *want)
	}
}

func TestOrdonnanceCaseInsensitiveLabels(t *testing.T) {
	e := NewOrdonnanceExtractor()

	rec := e.Extract("o.pdf", "OEIL DROIT : -1,25")
	if rec.EyeRight == nil {
		t.Fatal("expected a match on uppercase label")
	}
	if *rec.EyeRight != "-1.25" {
		t.Errorf("eye_right = %q", *rec.EyeRight)
	}
}

func TestOrdonnanceFileAlwaysSet(t *testing.T) {
	e := NewOrdonnanceExtractor()
	rec := e.Extract("scan-042.pdf", "")
	if rec.File != "scan-042.pdf" {
		t.Errorf("file = %q", rec.File)
	}
}
