package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cognitoiq/json2xsd/format"
)

func TestDefaultRecognizerIsDate(t *testing.T) {
	r := format.New()
	require.True(t, r.IsDate("02.01.2023"))
	require.True(t, r.IsDate("2023-01-02"))
	require.False(t, r.IsDate("not a date"))
}

func TestDefaultRecognizerIsTime(t *testing.T) {
	r := format.New()
	require.True(t, r.IsTime("15:04"))
	require.True(t, r.IsTime("3:04 PM"))
	require.False(t, r.IsTime("02.01.2023"))
}

func TestDefaultRecognizerIsDateTime(t *testing.T) {
	r := format.New()
	require.True(t, r.IsDateTime("2023-01-02T15:04:05Z"))
	require.True(t, r.IsDateTime("2023-01-02 15:04:05"))
	require.False(t, r.IsDateTime("2023-01-02"))
}

func TestDefaultRecognizerIsURI(t *testing.T) {
	r := format.New()
	require.True(t, r.IsURI("https://example.com/path"))
	require.True(t, r.IsURI("ftp://example.org/file"))
	require.False(t, r.IsURI("not a uri"))
}

func TestNewWithCustomDateLayoutsOverridesLocale(t *testing.T) {
	r := format.New("01/02/2006")
	require.True(t, r.IsDate("12/31/2023"))
	require.False(t, r.IsDate("02.01.2023"))
}

func TestRecognizerZeroValueFallsBackToDefaults(t *testing.T) {
	r := &format.Recognizer{}
	require.True(t, r.IsDate("2023-01-02"))
	require.True(t, r.IsTime("15:04"))
	require.True(t, r.IsDateTime("2023-01-02T15:04:05Z"))
	require.True(t, r.IsURI("https://example.com/x"))
}
