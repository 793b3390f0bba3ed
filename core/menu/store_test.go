package menu_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"menu-manager/core/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	calls [][]string
	err   error
}

func (p *recordingPersister) Persist(_ context.Context, dishes []string) error {
	if p.err != nil {
		return p.err
	}
	p.calls = append(p.calls, dishes)
	return nil
}

func TestStore_Add(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	store := menu.NewStore(nil, p)

	require.NoError(t, store.Add(ctx, "  Kung Pao  "))
	assert.Equal(t, []string{"Kung Pao"}, store.List())

	err := store.Add(ctx, "Kung Pao")
	assert.ErrorIs(t, err, menu.ErrAlreadyExists)
	assert.Equal(t, []string{"Kung Pao"}, store.List())

	assert.ErrorIs(t, store.Add(ctx, "   "), menu.ErrEmptyName)
	assert.Len(t, p.calls, 1)
}

func TestStore_AddIsCaseSensitive(t *testing.T) {
	store := menu.NewStore([]string{"Tofu"}, nil)

	require.NoError(t, store.Add(context.Background(), "tofu"))
	assert.Equal(t, []string{"Tofu", "tofu"}, store.List())
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	store := menu.NewStore([]string{"A", "B", "C"}, p)

	require.NoError(t, store.Delete(ctx, "B"))
	assert.Equal(t, []string{"A", "C"}, store.List())

	// Absent names still persist.
	require.NoError(t, store.Delete(ctx, "Z"))
	assert.Equal(t, []string{"A", "C"}, store.List())
	require.Len(t, p.calls, 2)
	assert.Equal(t, []string{"A", "C"}, p.calls[1])
}

func TestStore_Rename(t *testing.T) {
	tests := []struct {
		name    string
		oldName string
		newName string
		wantErr error
		want    []string
		persist bool
	}{
		{"ReplacesInPlace", "B", "X", nil, []string{"A", "X", "C"}, true},
		{"TrimsNewName", "B", "  X ", nil, []string{"A", "X", "C"}, true},
		{"SameNameIsNoop", "B", "B", nil, []string{"A", "B", "C"}, false},
		{"TargetExists", "A", "C", menu.ErrAlreadyExists, []string{"A", "B", "C"}, false},
		{"SourceMissing", "Q", "X", menu.ErrNotFound, []string{"A", "B", "C"}, false},
		{"EmptyTarget", "A", " ", menu.ErrEmptyName, []string{"A", "B", "C"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingPersister{}
			store := menu.NewStore([]string{"A", "B", "C"}, p)

			err := store.Rename(context.Background(), tt.oldName, tt.newName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, store.List())
			assert.Equal(t, tt.persist, len(p.calls) == 1)
		})
	}
}

func TestStore_PersistFailureRollsBack(t *testing.T) {
	p := &recordingPersister{err: errors.New("disk full")}
	store := menu.NewStore([]string{"A"}, p)

	err := store.Add(context.Background(), "B")
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, []string{"A"}, store.List())
}

func TestStore_ListIsACopy(t *testing.T) {
	store := menu.NewStore([]string{"A", "B"}, nil)

	list := store.List()
	list[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, store.List())
}

func TestStore_InvariantHoldsUnderRandomOperations(t *testing.T) {
	ctx := context.Background()
	names := []string{"A", "B", "C", "D", " A ", "", "  "}
	rng := rand.New(rand.NewPCG(1, 2))
	store := menu.NewStore(nil, &recordingPersister{})

	for i := 0; i < 500; i++ {
		pick := func() string { return names[rng.IntN(len(names))] }
		switch rng.IntN(3) {
		case 0:
			_ = store.Add(ctx, pick())
		case 1:
			_ = store.Delete(ctx, pick())
		case 2:
			_ = store.Rename(ctx, pick(), pick())
		}

		list := store.List()
		assert.NotContains(t, list, "")
		sorted := slices.Clone(list)
		slices.Sort(sorted)
		assert.Equal(t, len(sorted), len(slices.Compact(sorted)), "duplicates in %v", list)
	}
}

func TestSanitize(t *testing.T) {
	got := menu.Sanitize([]string{" A", "", "B", "A", "  ", "C "})
	assert.Equal(t, []string{"A", "B", "C"}, got)
}
