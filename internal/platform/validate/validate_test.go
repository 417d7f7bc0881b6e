package validate

import "testing"

type opening struct {
	At string `validate:"clock"`
}

func TestClockTag(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		if err := Struct(opening{At: ok}); err != nil {
			t.Errorf("Struct(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "9:30", "24:00", "12:60", "noon"} {
		if err := Struct(opening{At: bad}); err == nil {
			t.Errorf("Struct(%q) = nil, want error", bad)
		}
	}
}
