package constraint

import (
	"testing"
	"unicode"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name        string
		c           Constraints
		multiline   bool
		multiCursor bool
		maxLength   int
		filtered    bool
	}{
		{"editor", Editor(), true, true, 0, false},
		{"single line", SingleLine(), false, false, 0, false},
		{"numeric", Numeric(), false, false, 10, true},
		{"goto line", GotoLine(), false, false, 20, true},
		{"find", FindQuery(), false, false, 0, false},
		{"replace", ReplaceQuery(), false, false, 0, false},
		{"csv cell", CsvCell(), false, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.AllowMultiline != tt.multiline {
				t.Errorf("AllowMultiline = %v, want %v", tt.c.AllowMultiline, tt.multiline)
			}
			if tt.c.AllowMultiCursor != tt.multiCursor {
				t.Errorf("AllowMultiCursor = %v, want %v", tt.c.AllowMultiCursor, tt.multiCursor)
			}
			if !tt.c.AllowSelection || !tt.c.EnableUndo {
				t.Error("every preset allows selection and undo")
			}
			if tt.c.MaxLength != tt.maxLength {
				t.Errorf("MaxLength = %d, want %d", tt.c.MaxLength, tt.maxLength)
			}
			if (tt.c.Filter != nil) != tt.filtered {
				t.Errorf("Filter set = %v, want %v", tt.c.Filter != nil, tt.filtered)
			}
		})
	}
}

func TestNumericAllowsExactlyASCIIDigits(t *testing.T) {
	c := Numeric()
	for r := rune(0); r < 0x2000; r++ {
		want := r >= '0' && r <= '9'
		if got := c.IsCharAllowed(r); got != want {
			t.Fatalf("IsCharAllowed(%q) = %v, want %v", r, got, want)
		}
	}
	if c.IsCharAllowed('٣') {
		t.Error("non-ASCII digits must be rejected")
	}
}

func TestWouldExceedMaxLength(t *testing.T) {
	c := Numeric()
	if !c.WouldExceedMaxLength(8, 5) {
		t.Error("WouldExceedMaxLength(8, 5) should be true with max 10")
	}
	if c.WouldExceedMaxLength(5, 3) {
		t.Error("WouldExceedMaxLength(5, 3) should be false with max 10")
	}
	if c.WouldExceedMaxLength(5, 5) {
		t.Error("reaching the limit exactly is allowed")
	}
	if Editor().WouldExceedMaxLength(1<<30, 1<<30) {
		t.Error("unlimited constraints never exceed")
	}
}

func TestRemaining(t *testing.T) {
	c := GotoLine()
	if got := c.Remaining(15); got != 5 {
		t.Errorf("Remaining(15) = %d, want 5", got)
	}
	if got := c.Remaining(30); got != 0 {
		t.Errorf("Remaining(30) = %d, want 0", got)
	}
}

func TestGotoLineFilter(t *testing.T) {
	c := GotoLine()
	for _, r := range "0123456789:" {
		if !c.IsCharAllowed(r) {
			t.Errorf("IsCharAllowed(%q) = false", r)
		}
	}
	for _, r := range "a-, \n" {
		if c.IsCharAllowed(r) {
			t.Errorf("IsCharAllowed(%q) = true", r)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		in   string
		want string
	}{
		{"editor keeps everything", Editor(), "a\nb", "a\nb"},
		{"single line drops newlines", SingleLine(), "a\nb\r\nc", "abc"},
		{"numeric drops non-digits", Numeric(), "12a\n3-4", "1234"},
		{"goto keeps colon", GotoLine(), "12:7x", "12:7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 3, "hel"},
		{"hello", 9, "hello"},
		{"日本語", 2, "日本"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestWithOverride(t *testing.T) {
	limit := 4
	c := SingleLine().With(Override{MaxLength: &limit, Allowed: "abc"})
	if c.MaxLength != 4 {
		t.Errorf("MaxLength = %d, want 4", c.MaxLength)
	}
	if !c.IsCharAllowed('b') || c.IsCharAllowed('d') {
		t.Error("Allowed override not applied")
	}
	base := Numeric()
	if got := base.With(Override{}); got.MaxLength != 10 || got.Filter != base.Filter {
		t.Error("empty override should leave the preset unchanged")
	}
}

func TestFilterFunc(t *testing.T) {
	c := SingleLine()
	c.Filter = FilterFunc(unicode.IsUpper)
	if !c.IsCharAllowed('Q') || c.IsCharAllowed('q') {
		t.Error("FilterFunc not consulted")
	}
}

func TestContextMapping(t *testing.T) {
	tests := []struct {
		ctx       Context
		maxLength int
		multiline bool
		modal     bool
		name      string
	}{
		{ContextEditor, 0, true, false, "editor"},
		{ContextCommandPalette, 0, false, true, "command_palette"},
		{ContextGotoLine, 20, false, true, "goto_line"},
		{ContextFindQuery, 0, false, true, "find_query"},
		{ContextReplaceQuery, 0, false, true, "replace_query"},
		{ContextCsvCell(3, 4), 0, false, false, "csv_cell(3,4)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.ctx.Constraints()
			if c.MaxLength != tt.maxLength || c.AllowMultiline != tt.multiline {
				t.Errorf("Constraints() = %+v", c)
			}
			if tt.ctx.IsModal() != tt.modal {
				t.Errorf("IsModal() = %v, want %v", tt.ctx.IsModal(), tt.modal)
			}
			if tt.ctx.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.ctx.String(), tt.name)
			}
		})
	}
	if !ContextEditor.IsEditor() || !ContextCsvCell(0, 0).IsCsvCell() {
		t.Error("IsEditor/IsCsvCell wrong")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("sidebar"); ok {
		t.Error("ParseKind accepted an unknown name")
	}
}
