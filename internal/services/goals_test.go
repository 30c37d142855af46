package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/pkg/helpers"
)

func TestAddGoalAssignsColorWhenMissing(t *testing.T) {
	svc := NewGoalService(newTestState())

	g, err := svc.Add(helpers.TestCtx(), dto.CreateGoalRequest{Name: "Viaje", TargetAmount: 5000})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if !strings.HasPrefix(g.Color, "hsl(") {
		t.Fatalf("expected generated hsl color, got %q", g.Color)
	}

	g2, err := svc.Add(helpers.TestCtx(), dto.CreateGoalRequest{Name: "Auto", TargetAmount: 1000, Color: "#ff0000"})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if g2.Color != "#ff0000" {
		t.Fatalf("explicit color overwritten: %q", g2.Color)
	}
}

func TestAddGoalValidation(t *testing.T) {
	svc := NewGoalService(newTestState())
	ctx := helpers.TestCtx()

	if _, err := svc.Add(ctx, dto.CreateGoalRequest{TargetAmount: 100}); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if _, err := svc.Add(ctx, dto.CreateGoalRequest{Name: "x", TargetAmount: 0}); err == nil {
		t.Fatalf("expected error for zero target")
	}
}

func TestAddFundsClampsAtTarget(t *testing.T) {
	svc := NewGoalService(newTestState())
	ctx := helpers.TestCtx()

	g, err := svc.Add(ctx, dto.CreateGoalRequest{Name: "Auto", TargetAmount: 1000})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if _, err := svc.Update(ctx, g.ID, dto.GoalUpdates{CurrentAmount: helpers.Ptr(800.0)}); err != nil {
		t.Fatalf("update error: %v", err)
	}

	funded, err := svc.AddFunds(ctx, g.ID, 500)
	if err != nil {
		t.Fatalf("add funds error: %v", err)
	}
	if funded.CurrentAmount != 1000 {
		t.Fatalf("currentAmount = %v, want 1000", funded.CurrentAmount)
	}
}

func TestAddFundsErrors(t *testing.T) {
	svc := NewGoalService(newTestState())
	ctx := helpers.TestCtx()

	if _, err := svc.AddFunds(ctx, "missing", 100); err == nil {
		t.Fatalf("expected not-found error")
	}
	g, _ := svc.Add(ctx, dto.CreateGoalRequest{Name: "x", TargetAmount: 10})
	var ve *errs.ValidationError
	if _, err := svc.AddFunds(ctx, g.ID, 0); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGoalProgress(t *testing.T) {
	svc := NewGoalService(newTestState())
	ctx := helpers.TestCtx()

	g, _ := svc.Add(ctx, dto.CreateGoalRequest{Name: "Viaje", TargetAmount: 5000})
	if _, err := svc.AddFunds(ctx, g.ID, 1250); err != nil {
		t.Fatalf("add funds error: %v", err)
	}

	list := svc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(list))
	}
	p := list[0]
	if p.Progress != 25 || p.Remaining != 3750 || p.Completed {
		t.Fatalf("progress wrong: %+v", p)
	}
}
