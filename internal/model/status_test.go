package model

import "testing"

func TestStatus_CanTransitionTo_Pending(t *testing.T) {
	if !StatusPending.CanTransitionTo(StatusApproved) {
		t.Error("pending → approved 应被允许")
	}
	if !StatusPending.CanTransitionTo(StatusRejected) {
		t.Error("pending → rejected 应被允许")
	}
	if StatusPending.CanTransitionTo(StatusCompleted) {
		t.Error("pending → completed 不应被允许")
	}
}

func TestStatus_CanTransitionTo_Approved(t *testing.T) {
	if !StatusApproved.CanTransitionTo(StatusCompleted) {
		t.Error("approved → completed 应被允许")
	}
	if StatusApproved.CanTransitionTo(StatusRejected) {
		t.Error("approved → rejected 不应被允许")
	}
	if StatusApproved.CanTransitionTo(StatusPending) {
		t.Error("approved → pending 不应被允许")
	}
}

func TestStatus_TerminalStatesAllowNothing(t *testing.T) {
	// 终态单调性：rejected / completed 之后不允许任何流转
	targets := []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}
	for _, from := range []Status{StatusRejected, StatusCompleted} {
		if !from.Terminal() {
			t.Errorf("%s 应为终态", from)
		}
		for _, to := range targets {
			if from.CanTransitionTo(to) {
				t.Errorf("%s → %s 不应被允许", from, to)
			}
		}
	}
}

func TestRequestType_Valid(t *testing.T) {
	for _, typ := range []RequestType{RequestTemporaryAbsence, RequestTemporaryResidence, RequestHouseholdChange} {
		if !typ.Valid() {
			t.Errorf("%s 应为合法申报类型", typ)
		}
	}
	if RequestType("marriage").Valid() {
		t.Error("未知申报类型不应合法")
	}
}
