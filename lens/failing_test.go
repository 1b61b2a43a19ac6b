package lens_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rgrinberg/fclabels/functional"
	"github.com/rgrinberg/fclabels/lens"
)

type config struct {
	entries map[string]string
}

func configKey(key string) lens.Failing[config, string] {
	return lens.NewFailing(
		func(c config) functional.Result[string] {
			v, ok := c.entries[key]
			if !ok {
				return functional.Err[string](fmt.Errorf("missing key %q", key))
			}
			return functional.Ok(v)
		},
		func(c config, v string) functional.Result[config] {
			entries := make(map[string]string, len(c.entries))
			for k, val := range c.entries {
				entries[k] = val
			}
			entries[key] = v
			return functional.Ok(config{entries: entries})
		},
	)
}

func TestFailingGet(t *testing.T) {
	cfg := config{entries: map[string]string{"host": "localhost"}}

	t.Run("success carries the value", func(t *testing.T) {
		res := configKey("host").Get(cfg)
		if res.IsErr() || res.Unwrap() != "localhost" {
			t.Errorf("expected localhost, got %v", res)
		}
	})

	t.Run("failure carries the diagnostic", func(t *testing.T) {
		res := configKey("port").Get(cfg)
		if res.IsOk() {
			t.Fatal("expected error")
		}
		if res.Error().Error() != `missing key "port"` {
			t.Errorf("unexpected diagnostic: %v", res.Error())
		}
	})
}

func TestFailingSetAndModify(t *testing.T) {
	cfg := config{entries: map[string]string{"host": "localhost"}}

	t.Run("set rewrites the focus", func(t *testing.T) {
		res := configKey("host").Set(cfg, "example.com")
		if res.IsErr() {
			t.Fatalf("unexpected error: %v", res.Error())
		}
		if res.Unwrap().entries["host"] != "example.com" {
			t.Error("expected example.com")
		}
		if cfg.entries["host"] != "localhost" {
			t.Error("original should be unchanged")
		}
	})

	t.Run("set on a missing focus reports why", func(t *testing.T) {
		res := configKey("port").Set(cfg, "8080")
		if res.IsOk() {
			t.Fatal("expected error")
		}
	})

	t.Run("failing update propagates unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		res := configKey("host").Modify(cfg, func(string) functional.Result[string] {
			return functional.Err[string](boom)
		})
		if res.IsOk() || !errors.Is(res.Error(), boom) {
			t.Errorf("expected boom, got %v", res.Error())
		}
	})
}

func TestComposeFailing(t *testing.T) {
	type app struct {
		cfg config
	}
	appCfg := lens.New(
		func(a app) config { return a.cfg },
		func(a app, c config) app { a.cfg = c; return a },
	).Failing()

	host := lens.ComposeFailing(appCfg, configKey("host"))
	a := app{cfg: config{entries: map[string]string{"host": "localhost"}}}

	res := host.Get(a)
	if res.IsErr() || res.Unwrap() != "localhost" {
		t.Errorf("expected localhost, got %v", res)
	}

	updated := host.Set(a, "example.com")
	if updated.IsErr() {
		t.Fatalf("unexpected error: %v", updated.Error())
	}
	if updated.Unwrap().cfg.entries["host"] != "example.com" {
		t.Error("expected example.com")
	}

	missing := lens.ComposeFailing(appCfg, configKey("port"))
	if missing.Get(a).IsOk() {
		t.Error("expected error for missing key")
	}
}

func TestProductFailing(t *testing.T) {
	cfg := config{entries: map[string]string{"host": "localhost", "port": "8080"}}
	both := lens.ProductFailing(configKey("host"), configKey("port"))

	t.Run("pairs both foci", func(t *testing.T) {
		res := both.Get(cfg)
		if res.IsErr() || res.Unwrap() != functional.NewPair("localhost", "8080") {
			t.Errorf("expected (localhost, 8080), got %v", res)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		bad := lens.ProductFailing(configKey("nope"), configKey("host"))
		res := bad.Get(cfg)
		if res.IsOk() {
			t.Fatal("expected error")
		}
		if res.Error().Error() != `missing key "nope"` {
			t.Errorf("expected the first error, got %v", res.Error())
		}
	})

	t.Run("sets both foci", func(t *testing.T) {
		res := both.Set(cfg, functional.NewPair("example.com", "9090"))
		if res.IsErr() {
			t.Fatalf("unexpected error: %v", res.Error())
		}
		got := res.Unwrap().entries
		if got["host"] != "example.com" || got["port"] != "9090" {
			t.Errorf("unexpected entries: %v", got)
		}
	})
}
