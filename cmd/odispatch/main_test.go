package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
bindings:
  - type: base
  - type: user
  - type: basket
    factory: user
`

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestKeys(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, testManifest)
	out, _, err := run(t, "--manifest", path, "keys")
	require.NoError(t, err)
	assert.Equal(t, "*examples.BaseHandler\n*examples.BasketHandler\n*examples.UserHandler\n", out)
}

func TestInject_Success(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, testManifest)
	out, _, err := run(t, "-m", path, "inject", "user", "base")
	require.NoError(t, err)
	assert.Equal(t, "user: injected /users\nbase: injected /\n", out)
}

func TestInject_Failures(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, testManifest)
	out, _, err := run(t, "-m", path, "inject", "user", "admin", "basket")
	require.Error(t, err)
	assert.EqualError(t, err, "2 of 3 dispatches failed")

	assert.Contains(t, out, "user: injected /users\n")
	assert.Contains(t, out,
		"admin: No injector factory bound for Class<*examples.AdminHandler>. "+
			"Injector factories were bound for supertypes of *examples.AdminHandler: "+
			"*examples.BaseHandler, *examples.UserHandler. "+
			"Did you mean to bind an injector factory for the subtype?\n")
	assert.Contains(t, out, "basket: di: userFactory does not implement Factory[*examples.BasketHandler]\n")
}

func TestInject_UnknownComponent(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, testManifest)
	_, _, err := run(t, "-m", path, "inject", "order")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component "order" (known: admin, base, basket, user)`)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "bindings:\n  - type: user\n")

	out, _, err := run(t, "-m", path, "explain", "user")
	require.NoError(t, err)
	assert.Equal(t, "user: bound as *examples.UserHandler\n", out)

	out, _, err = run(t, "-m", path, "explain", "basket")
	require.NoError(t, err)
	assert.Equal(t, "basket: No injector factory bound for Class<*examples.BasketHandler>\n", out)
}

func TestManifestErrors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "-m", filepath.Join(t.TempDir(), "missing.yaml"), "keys")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest: read")

	path := writeManifest(t, "bindings:\n  - type: order\n")
	_, _, err = run(t, "-m", path, "keys")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown catalog name: type "order"`)
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, testManifest)

	_, stderr, err := run(t, "-m", path, "--log-level", "debug", "inject", "admin")
	require.Error(t, err)
	assert.Contains(t, stderr, "registry assembled")
	assert.Contains(t, stderr, "no injector factory bound")

	_, _, err = run(t, "-m", path, "--log-level", "loud", "keys")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

// Not parallel: t.Setenv.
func TestEnvironmentConfig(t *testing.T) {
	path := writeManifest(t, "bindings:\n  - type: basket\n")
	t.Setenv("ODISPATCH_MANIFEST", path)
	t.Setenv("ODISPATCH_LOG_LEVEL", "error")

	out, stderr, err := run(t, "keys")
	require.NoError(t, err)
	assert.Equal(t, "*examples.BasketHandler\n", out)
	assert.Empty(t, stderr)

	// Flags override the environment.
	other := writeManifest(t, "bindings:\n  - type: user\n")
	out, _, err = run(t, "--manifest", other, "keys")
	require.NoError(t, err)
	assert.Equal(t, "*examples.UserHandler\n", out)
}
