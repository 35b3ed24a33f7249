package theme

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestHolderReadBeforeLoad(t *testing.T) {
	var holder Holder
	if _, err := holder.Current(); !errors.Is(err, ErrThemeNotLoaded) {
		t.Fatalf("expected ErrThemeNotLoaded, got %v", err)
	}
}

func TestHolderLoadAndSwap(t *testing.T) {
	resolved, err := New(testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var holder Holder
	holder.Load(resolved)

	current, err := holder.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.Name != resolved.Name {
		t.Fatalf("expected %q, got %q", resolved.Name, current.Name)
	}

	light := testConfig()
	light.Name = "swap"
	light.Appearance = AppearanceLight
	swapped, err := New(light, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	holder.Load(swapped)

	current, err = holder.Current()
	if err != nil {
		t.Fatalf("Current after swap: %v", err)
	}
	if current.Name != "swap" {
		t.Fatalf("swap did not replace the theme, got %q", current.Name)
	}
}

func TestHolderConcurrentReaders(t *testing.T) {
	resolved, err := New(testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var holder Holder
	holder.Load(resolved)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := holder.Current(); err != nil {
				t.Errorf("Current: %v", err)
			}
		}()
	}
	wg.Wait()
}
