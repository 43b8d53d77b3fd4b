package resume

import "testing"

// --- SplitName ---

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		first string
		last  string
	}{
		{name: "empty", in: "", first: "", last: ""},
		{name: "whitespace only", in: "   ", first: "", last: ""},
		{name: "single word", in: "Madonna", first: "Madonna", last: ""},
		{name: "two words", in: "John Smith", first: "John", last: "Smith"},
		{name: "three words keep rest as last", in: "Mary Jane Watson", first: "Mary", last: "Jane Watson"},
		{name: "four words", in: "Juan Carlos de Silva", first: "Juan", last: "Carlos de Silva"},
		{name: "extra spacing", in: "  John   Smith  ", first: "John", last: "Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.in)
			if first != tt.first || last != tt.last {
				t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.in, first, last, tt.first, tt.last)
			}
		})
	}
}

// --- LikelyPersonName ---

func TestLikelyPersonName(t *testing.T) {
	p := DefaultPatterns()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "plain name", in: "John Smith", want: true},
		{name: "hyphenated", in: "Mary-Jane O'Brien", want: true},
		{name: "job title word", in: "Senior Software Engineer", want: false},
		{name: "org word", in: "Acme Technologies", want: false},
		{name: "university", in: "Stanford University", want: false},
		{name: "digits in word", in: "John Smith2", want: false},
		{name: "empty", in: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LikelyPersonName(tt.in); got != tt.want {
				t.Errorf("LikelyPersonName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// --- Validators ---

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "formatted us number", in: "+1 (555) 123-4567", want: "+15551234567"},
		{name: "bare digits", in: "9876543210", want: "9876543210"},
		{name: "too short", in: "12345", want: ""},
		{name: "too long", in: "+1234567890123456", want: ""},
		{name: "letters rejected", in: "call 9876543210", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPhone(tt.in); got != tt.want {
				t.Errorf("ValidPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid lowered", in: "John.Smith@Example.COM", want: "john.smith@example.com"},
		{name: "plus tag", in: "a+tag@gmail.com", want: "a+tag@gmail.com"},
		{name: "missing tld", in: "john@example", want: ""},
		{name: "spaces inside", in: "john smith@example.com", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEmail(tt.in); got != tt.want {
				t.Errorf("ValidEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidPostcode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "90210", want: "90210"},
		{in: "600001", want: "600001"},
		{in: "1234", want: ""},
		{in: "1234567", want: ""},
		{in: "60000a", want: ""},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := ValidPostcode(tt.in); got != tt.want {
			t.Errorf("ValidPostcode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already valid", in: "https://github.com/jsmith", want: "https://github.com/jsmith"},
		{name: "http accepted", in: "http://example.com/page", want: "http://example.com/page"},
		{name: "scheme prepended", in: "linkedin.com/in/jsmith", want: "https://linkedin.com/in/jsmith"},
		{name: "garbage rejected", in: "not a url", want: ""},
		{name: "broken scheme rejected", in: "https://not", want: ""},
		{name: "too short to be a link", in: "a.io", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairURL(tt.in); got != tt.want {
				t.Errorf("RepairURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- Fallback extraction ---

func TestFallbackContacts(t *testing.T) {
	p := DefaultPatterns()

	doc := Normalize(`John Smith
john.smith@gmail.com
+1 555 123 4567
https://linkedin.com/in/jsmith and https://github.com/jsmith

WORK EXPERIENCE
Senior Engineer at Acme, contact hr@acme.com`)

	c := p.FallbackContacts(doc)

	if c.FirstName != "John" || c.LastName != "Smith" {
		t.Errorf("name = (%q, %q), want (John, Smith)", c.FirstName, c.LastName)
	}
	if c.Email != "john.smith@gmail.com" {
		t.Errorf("email = %q, want john.smith@gmail.com", c.Email)
	}
	if c.Phone != "+15551234567" {
		t.Errorf("phone = %q, want +15551234567", c.Phone)
	}
	if c.LinkedInURL != "https://linkedin.com/in/jsmith" {
		t.Errorf("linkedin = %q", c.LinkedInURL)
	}
	if c.GitHubURL != "https://github.com/jsmith" {
		t.Errorf("github = %q", c.GitHubURL)
	}
	if c.LeetCodeURL != "" {
		t.Errorf("leetcode = %q, want empty", c.LeetCodeURL)
	}
}

func TestFallbackEmailPrefersPersonalDomain(t *testing.T) {
	p := DefaultPatterns()
	doc := "Contact: jsmith@acme.io or personal john@outlook.com"
	if got := p.FallbackEmail(doc); got != "john@outlook.com" {
		t.Errorf("FallbackEmail = %q, want john@outlook.com", got)
	}
}

func TestFallbackContactsNothingFound(t *testing.T) {
	p := DefaultPatterns()
	c := p.FallbackContacts("A short note about gardening and weather patterns over the years.")
	if c != (ContactRecord{}) {
		t.Errorf("expected empty record, got %+v", c)
	}
}
