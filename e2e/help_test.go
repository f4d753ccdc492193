//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.startWithPoems())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("pan left"), "full help lists every binding")

	require.NoError(t, tf.SendKeys(KeyEsc))
	tf.ClearOutput()
	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("2 / 3"), "navigation works again after closing help")
}

func TestPagerRoundTrip(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.startWithPoems())
	require.True(t, tf.Ready())

	tf.ClearOutput()
	require.NoError(t, tf.SendKeys(KeyPager))
	require.True(t, tf.SeePlain("trunkless legs"), "ov shows the poem")

	tf.ClearOutput()
	require.NoError(t, tf.SendKeys(KeyQuit))
	require.True(t, tf.SeePlain("poemview"), "viewer repaints after the pager exits")
	tf.ClearOutput()
	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("2 / 3"), "viewer resumes after the pager exits")
}
