package loader_test

import (
	"errors"
	"testing"

	"product-gifts/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	a := &fakeFeature{name: "a", enabled: true}
	b := &fakeFeature{name: "b", enabled: false}
	c := &fakeFeature{name: "c", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(c)

	loaded, err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, loaded)
	assert.True(t, a.loaded)
	assert.False(t, b.loaded)
	assert.True(t, c.loaded)
}

func TestManager_LoadAllError(t *testing.T) {
	boom := errors.New("boom")
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "a", enabled: true})
	mgr.Register(&fakeFeature{name: "b", enabled: true, err: boom})
	mgr.Register(&fakeFeature{name: "c", enabled: true})

	loaded, err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, loaded)
}

func TestManager_Duplicate(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "a", enabled: true})
	mgr.Register(&fakeFeature{name: "a", enabled: true})

	_, err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "registered twice")
}
