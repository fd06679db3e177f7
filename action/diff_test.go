package action

import (
	"slices"
	"testing"
)

type playerID uint32

func TestGenerateDiffsMatchesMembershipChange(t *testing.T) {
	s := testRegistry.NewState()
	s.Update([]testAction{actJump, actRun})
	_ = s.Tick(epoch)

	s.Update([]testAction{actRun, actFire})
	diffs := GenerateDiffs(playerID(7), s)

	want := []Diff[testAction, playerID]{
		{Kind: DiffPressed, Action: actFire, ID: 7},
		{Kind: DiffReleased, Action: actJump, ID: 7},
	}
	if !slices.Equal(diffs, want) {
		t.Errorf("GenerateDiffs() = %+v, want %+v", diffs, want)
	}
}

func TestGenerateDiffsEmptyAfterTick(t *testing.T) {
	s := testRegistry.NewState()
	s.Update([]testAction{actJump})
	_ = s.Tick(epoch)

	if diffs := GenerateDiffs(playerID(1), s); len(diffs) != 0 {
		t.Errorf("expected no diffs for a held action, got %+v", diffs)
	}
}

func TestApplyDiffReplaysState(t *testing.T) {
	local := testRegistry.NewState()
	remote := testRegistry.NewState()

	frames := [][]testAction{
		{actJump},
		{actJump, actFire},
		{actFire},
		{},
	}

	for i, pressed := range frames {
		_ = local.Tick(epoch)
		_ = remote.Tick(epoch)

		local.Update(pressed)
		for _, d := range GenerateDiffs(playerID(3), local) {
			ApplyDiff(remote, d)
		}

		if !slices.Equal(local.GetPressed(), remote.GetPressed()) {
			t.Errorf("frame %d: remote pressed %v, local %v", i, remote.GetPressed(), local.GetPressed())
		}
		if !slices.Equal(local.GetJustReleased(), remote.GetJustReleased()) {
			t.Errorf("frame %d: remote just released %v, local %v", i, remote.GetJustReleased(), local.GetJustReleased())
		}
	}
}
