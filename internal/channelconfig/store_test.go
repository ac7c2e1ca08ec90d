package channelconfig_test

import (
	"sort"
	"testing"

	"ai-brain/internal/channelconfig"
)

func TestStore(t *testing.T) {
	t.Run("Missing Config Accepts All", func(t *testing.T) {
		s := channelconfig.New()
		if !s.Allowed("ctx-a", "C1") {
			t.Errorf("expected fail-open accept for unconfigured context")
		}
	})

	t.Run("Configured Context Filters", func(t *testing.T) {
		s := channelconfig.New()
		s.Replace("ctx-a", []string{"C1"})

		if !s.Allowed("ctx-a", "C1") {
			t.Errorf("C1 should be allowed for ctx-a")
		}
		if s.Allowed("ctx-a", "C2") {
			t.Errorf("C2 should be dropped for ctx-a")
		}
		// Other contexts stay unfiltered
		if !s.Allowed("ctx-b", "C2") {
			t.Errorf("ctx-b has no config, C2 should be accepted")
		}
	})

	t.Run("Replace Is Wholesale", func(t *testing.T) {
		s := channelconfig.New()
		s.Replace("ctx-a", []string{"C1", "C2"})
		s.Replace("ctx-a", []string{"C3"})

		if s.Allowed("ctx-a", "C1") {
			t.Errorf("C1 should be gone after replace")
		}
		if !s.Allowed("ctx-a", "C3") {
			t.Errorf("C3 should be allowed after replace")
		}
	})

	t.Run("Empty Selection Filters Everything", func(t *testing.T) {
		s := channelconfig.New()
		s.Replace("ctx-a", []string{})

		if s.Allowed("ctx-a", "C1") {
			t.Errorf("explicit empty selection should drop all channels")
		}
	})

	t.Run("Selected Snapshot", func(t *testing.T) {
		s := channelconfig.New()

		if _, ok := s.Selected("ctx-a"); ok {
			t.Fatalf("expected no entry before Replace")
		}

		s.Replace("ctx-a", []string{"C2", "C1"})
		ids, ok := s.Selected("ctx-a")
		if !ok {
			t.Fatalf("expected entry after Replace")
		}
		sort.Strings(ids)
		if len(ids) != 2 || ids[0] != "C1" || ids[1] != "C2" {
			t.Errorf("unexpected snapshot: %v", ids)
		}
	})
}
