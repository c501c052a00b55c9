package module

import (
	"testing"

	phttp "gitwrapped/internal/platform/net/http"
	"gitwrapped/internal/platform/testkit"
)

type fakePort interface{ Ping() string }

type fakePortImpl struct{}

func (fakePortImpl) Ping() string { return "pong" }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) Name() string             { return m.name }

func TestRegistryRoundTrip(t *testing.T) {
	testkit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	Register("echo", fakePortImpl{})

	got, ok := PortsAs[fakePort]("echo")
	if !ok {
		t.Fatal("expected registered ports")
	}
	if got.Ping() != "pong" {
		t.Fatalf("got %q", got.Ping())
	}

	if _, ok := PortsAs[fakePort]("missing"); ok {
		t.Fatal("unknown name should not resolve")
	}
	// registered under the wrong type should not assert
	if _, ok := PortsAs[interface{ Quack() }]("echo"); ok {
		t.Fatal("mismatched port type should not resolve")
	}
}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	// direct implement
	m := fakeModule{name: "direct", ports: fakePortImpl{}}
	if got, ok := PortsOf[fakePort](m); !ok || got.Ping() != "pong" {
		t.Fatalf("direct lookup got ok=%v", ok)
	}

	// bundle struct with an exported field implementing the port
	type bundle struct {
		Echo fakePort
	}
	b := fakeModule{name: "bundled", ports: bundle{Echo: fakePortImpl{}}}
	if got, ok := PortsOf[fakePort](b); !ok || got.Ping() != "pong" {
		t.Fatalf("bundle lookup got ok=%v", ok)
	}

	// nil ports never resolve
	if _, ok := PortsOf[fakePort](fakeModule{name: "empty"}); ok {
		t.Fatal("nil ports should not resolve")
	}
}

func TestMustPortsOfPanics(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() {
		MustPortsOf[fakePort](fakeModule{name: "empty"})
	})
	testkit.MustNotPanic(t, func() {
		MustPortsOf[fakePort](fakeModule{name: "direct", ports: fakePortImpl{}})
	})
}
