package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

func testPack(id, name string) Factory {
	return func() (levels.Pack, error) {
		return levels.Pack{
			ID:     id,
			Name:   name,
			Levels: []levels.Level{{Name: "one", Rows: []string{"@o"}}, {Name: "two", Rows: []string{"o@"}}},
		}, nil
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", testPack("test-b", "Test B"))
	Register("test-a", testPack("test-a", ""))
	t.Cleanup(func() {
		unregister("test-a")
		unregister("test-b")
	})

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered packs should exist")
	}

	var got []PackInfo
	for _, info := range List() {
		if info.ID == "test-a" || info.ID == "test-b" {
			got = append(got, info)
		}
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d test packs, expected 2", len(got))
	}
	if got[0].ID != "test-a" || got[1].ID != "test-b" {
		t.Errorf("List() not sorted by ID: %+v", got)
	}
	if got[0].Title != "test-a" || got[1].Title != "Test B" {
		t.Errorf("unexpected titles: %+v", got)
	}
	if got[1].Levels != 2 {
		t.Errorf("Levels = %d, expected 2", got[1].Levels)
	}

	p, err := Create("test-b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Create() pack has %d levels, expected 2", p.Len())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-pack")
	if !errors.Is(err, ErrUnknownPack) {
		t.Errorf("Create() error = %v, expected ErrUnknownPack", err)
	}
	if Exists("no-such-pack") {
		t.Error("Exists() should be false for unknown packs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", testPack("test-dup", ""))
	t.Cleanup(func() { unregister("test-dup") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", testPack("test-dup", ""))
}

func TestRegisterFailingFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with failing factory should panic")
		}
		if Exists("test-bad") {
			t.Error("failing pack should not be registered")
		}
	}()
	Register("test-bad", func() (levels.Pack, error) {
		return levels.Pack{}, errors.New("boom")
	})
}
