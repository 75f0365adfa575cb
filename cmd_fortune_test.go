package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"fortune-cloud/fortune"
)

func TestFortuneCommandPrintsLocalFortune(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"fortune", "hi"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, fortune.Fortunes[4]+"\n", out.String())
}

func TestFortuneCommandRequiresThoughts(t *testing.T) {
	rootCmd.SetArgs([]string{"fortune"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.Error(t, rootCmd.Execute())
}
