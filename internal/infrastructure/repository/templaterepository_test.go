package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
)

func TestTemplateRepository_CreateAndLoadInOrder(t *testing.T) {
	f := newFixture(t)
	templates := NewTemplateRepository(f.db, f.log)
	entrance := f.globalSlot("Entrance")
	kyrie := f.globalSlot("Kyrie")

	tpl, err := template.NewTemplate("Sunday Mass", "", nil, []template.Slot{
		{SlotID: kyrie.ID(), Sequence: 20},
		{SlotID: entrance.ID(), Sequence: 10, IsIncludedByDefault: true},
	})
	require.NoError(t, err)
	require.NoError(t, templates.Create(f.ctx, tpl))

	got, err := templates.GetByID(f.ctx, tpl.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uint{entrance.ID(), kyrie.ID()}, got.SlotIDs())
	assert.Equal(t, []uint{entrance.ID()}, got.ExpansionSlots(true))
	assert.Equal(t, 1, got.Slots()[0].Sequence)
	assert.Equal(t, 2, got.Slots()[1].Sequence)

	dup, err := template.NewTemplate("Sunday Mass", "", nil, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, templates.Create(f.ctx, dup), template.ErrNameExists)
}

func TestTemplateRepository_ListActiveFiltersGenreAndStatus(t *testing.T) {
	f := newFixture(t)
	templates := NewTemplateRepository(f.db, f.log)

	create := func(name string, genreID *uint) *template.Template {
		tpl, err := template.NewTemplate(name, "", genreID, nil)
		require.NoError(t, err)
		require.NoError(t, templates.Create(f.ctx, tpl))
		return tpl
	}
	create("Baptism", nil)
	create("Choral Vespers", uintPtr(2))
	create("Organ Mass", uintPtr(3))
	inactive := create("Archived", nil)
	require.True(t, inactive.SetActive(false))
	require.NoError(t, templates.UpdateStatus(f.ctx, inactive))

	names := func(genreID *uint) []string {
		list, err := templates.ListActive(f.ctx, genreID)
		require.NoError(t, err)
		out := make([]string, 0, len(list))
		for _, tpl := range list {
			out = append(out, tpl.Name())
		}
		return out
	}

	assert.Equal(t, []string{"Baptism", "Choral Vespers", "Organ Mass"}, names(nil))
	assert.Equal(t, []string{"Baptism", "Choral Vespers"}, names(uintPtr(2)))
}

func TestTemplateRepository_SlotDeleteRestricted(t *testing.T) {
	f := newFixture(t)
	templates := NewTemplateRepository(f.db, f.log)
	s := f.globalSlot("Sequence")
	tpl, err := template.NewTemplate("Pentecost", "", nil, []template.Slot{{SlotID: s.ID(), Sequence: 1}})
	require.NoError(t, err)
	require.NoError(t, templates.Create(f.ctx, tpl))

	assert.Error(t, f.slots.HardDelete(f.ctx, s.ID()))
}
