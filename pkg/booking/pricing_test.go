package booking

import (
	"testing"
	"time"
)

const day = int64(24 * 60 * 60)

func TestNights(t *testing.T) {
	t.Run("full days", func(t *testing.T) {
		nights, err := Nights(0, 3*day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if nights != 3 {
			t.Errorf("unexpected nights: %d", nights)
		}
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		nights, err := Nights(0, 2*day+3600)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if nights != 3 {
			t.Errorf("unexpected nights: %d", nights)
		}
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		if _, err := Nights(2*day, day); err == nil {
			t.Error("should return an error")
		}
	})

	t.Run("same day", func(t *testing.T) {
		if _, err := Nights(day, day); err == nil {
			t.Error("should return an error")
		}
	})
}

func TestTotalPrice(t *testing.T) {
	price, err := TotalPrice(120.0, 0, 4*day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 480.0 {
		t.Errorf("unexpected price: %f", price)
	}
}

func TestStayOverlaps(t *testing.T) {
	t.Run("overlapping stays", func(t *testing.T) {
		if !StayOverlaps(0, 3*day, 2*day, 5*day) {
			t.Error("should overlap")
		}
	})
	t.Run("back to back stays", func(t *testing.T) {
		if StayOverlaps(0, 3*day, 3*day, 5*day) {
			t.Error("check-out day can be the next check-in day")
		}
	})
	t.Run("disjoint stays", func(t *testing.T) {
		if StayOverlaps(0, day, 4*day, 5*day) {
			t.Error("should not overlap")
		}
	})
}

func TestIsPastDate(t *testing.T) {
	now := time.Now()
	if !IsPastDate(now.Add(-time.Hour).Unix(), now) {
		t.Error("should be past")
	}
	if IsPastDate(now.Add(time.Hour).Unix(), now) {
		t.Error("should not be past")
	}
}
