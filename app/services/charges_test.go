package services

import (
	"testing"

	"yano-school/app/models"
)

func student(id, level string) *models.Student {
	return &models.Student{ID: id, ClassLevel: level, IsActive: true}
}

func feeItem(level, purpose string, amount models.Money) *models.FeeStructureItem {
	return &models.FeeStructureItem{ClassLevel: level, TermID: "term-1", Purpose: purpose, Amount: amount}
}

func TestBuildChargePlan(t *testing.T) {
	students := []*models.Student{
		student("s1", "JSS1"),
		student("s2", "JSS1"),
		student("s3", "SS3"),
	}
	itemsByLevel := map[string][]*models.FeeStructureItem{
		"JSS1": {
			feeItem("JSS1", "Tuition", 58000),
			feeItem("JSS1", "Library", 5000),
		},
	}

	t.Run("fresh term", func(t *testing.T) {
		creates, skipped := BuildChargePlan("term-1", students, itemsByLevel, nil)
		if len(creates) != 4 {
			t.Fatalf("got %d creates, want 4 (2 students x 2 items)", len(creates))
		}
		// SS3 has no structure: exactly one skip entry for the level.
		if len(skipped) != 1 || skipped[0].ClassLevel != "SS3" {
			t.Fatalf("skipped = %+v, want one entry for SS3", skipped)
		}
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		existing := map[string]bool{
			"s1/Tuition": true, "s1/Library": true,
			"s2/Tuition": true, "s2/Library": true,
		}
		creates, skipped := BuildChargePlan("term-1", students, itemsByLevel, existing)
		if len(creates) != 0 {
			t.Errorf("got %d creates, want 0 on re-run", len(creates))
		}
		existsSkips := 0
		for _, s := range skipped {
			if s.Reason == "charge already exists" {
				existsSkips++
			}
		}
		if existsSkips != 4 {
			t.Errorf("got %d already-exists skips, want 4", existsSkips)
		}
	})

	t.Run("malformed items are reported not fatal", func(t *testing.T) {
		bad := map[string][]*models.FeeStructureItem{
			"JSS1": {
				feeItem("JSS1", "Tuition", 58000),
				feeItem("JSS1", "Sports", -100),
				feeItem("JSS1", "", 2000),
			},
		}
		creates, skipped := BuildChargePlan("term-1", []*models.Student{student("s1", "JSS1")}, bad, nil)
		if len(creates) != 1 || creates[0].Purpose != "Tuition" {
			t.Fatalf("creates = %+v, want only the Tuition charge", creates)
		}
		if len(skipped) != 2 {
			t.Fatalf("got %d skips, want 2 (negative amount, blank purpose)", len(skipped))
		}
	})

	t.Run("inactive-free roster yields empty plan", func(t *testing.T) {
		creates, skipped := BuildChargePlan("term-1", nil, itemsByLevel, nil)
		if len(creates) != 0 || len(skipped) != 0 {
			t.Errorf("empty roster: creates=%d skipped=%d, want 0/0", len(creates), len(skipped))
		}
	})

	t.Run("generated charges carry no carried flag", func(t *testing.T) {
		creates, _ := BuildChargePlan("term-1", []*models.Student{student("s1", "JSS1")}, itemsByLevel, nil)
		for _, c := range creates {
			if c.CarriedOver {
				t.Errorf("generated charge %q flagged carried_over", c.Purpose)
			}
			if c.TermID != "term-1" {
				t.Errorf("charge %q bound to term %q, want term-1", c.Purpose, c.TermID)
			}
		}
	})
}
