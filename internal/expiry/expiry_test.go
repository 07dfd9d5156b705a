package expiry

import (
	"testing"
	"time"
)

func TestYYMM_Rollover(t *testing.T) {
	issue := time.Date(2029, time.December, 15, 0, 0, 0, 0, time.UTC)
	if got := YYMM(issue, 1, nil); got != "3012" {
		t.Fatalf("YYMM got %s want %s", got, "3012")
	}
}

func TestYYMM_LeapIssue(t *testing.T) {
	issue := time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)
	if got := YYMM(issue, 3, time.UTC); got != "3102" {
		t.Fatalf("YYMM got %s want %s", got, "3102")
	}
}

func TestYYMM_Location(t *testing.T) {
	// 23:30 UTC on Jan 31 is already February east of UTC.
	issue := time.Date(2030, time.January, 31, 23, 30, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+2", 2*60*60)
	if got := YYMM(issue, 0, loc); got != "3002" {
		t.Fatalf("YYMM got %s want %s", got, "3002")
	}
}

func TestParseYYMMEndOfMonth(t *testing.T) {
	ts, err := ParseYYMMEndOfMonth("3002", time.UTC)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}

	ts, err = ParseYYMMEndOfMonth("2802", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want = time.Date(2028, time.February, 29, 23, 59, 59, 999999999, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}
}

func TestValidateYYMM(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"3002", true}, {"9912", true}, {"0001", true}, {"1505", true},
		{"123", false}, {"12a4", false}, {"3013", false}, {"0000", false}, {"", false},
	}
	for _, c := range cases {
		err := ValidateYYMM(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("ValidateYYMM(%s) ok=%v got err=%v", c.in, c.ok, err)
		}
	}
}

func TestIsExpired(t *testing.T) {
	yymm := "3002"
	end, _ := ParseYYMMEndOfMonth(yymm, time.UTC)

	expired, err := IsExpired(yymm, end.Add(-time.Nanosecond), time.UTC)
	if err != nil || expired {
		t.Fatalf("expected not expired before end, got expired=%v err=%v", expired, err)
	}
	expired, err = IsExpired(yymm, end, time.UTC)
	if err != nil || expired {
		t.Fatalf("expected not expired at end, got expired=%v err=%v", expired, err)
	}
	expired, err = IsExpired(yymm, end.Add(time.Nanosecond), time.UTC)
	if err != nil || !expired {
		t.Fatalf("expected expired after end, got expired=%v err=%v", expired, err)
	}
	if _, err := IsExpired("15xx", end, time.UTC); err == nil {
		t.Fatalf("expected error for malformed expiry")
	}
}
