package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"studio-site/internal/domain"
)

func TestCurrentVersion(t *testing.T) {
	require.Equal(t, 2, currentVersion(domain.KeyAbout))
	require.Equal(t, 1, currentVersion(domain.KeyProjects))
}

func TestUpgradeRecord_UnversionedTreatedAsOne(t *testing.T) {
	rec := domain.Record{Collection: domain.KeyAbout, Data: json.RawMessage(`{"mission":"m"}`)}

	data, err := upgradeRecord(domain.KeyAbout, rec)
	require.NoError(t, err)

	var about domain.AboutContent
	require.NoError(t, json.Unmarshal(data, &about))
	require.Equal(t, "m", about.Mission)
	require.Len(t, about.Stats, 4)
	require.Len(t, about.Values, 4)
}

func TestUpgradeRecord_KeepsExistingFields(t *testing.T) {
	rec := domain.Record{
		Collection:    domain.KeyAbout,
		Data:          json.RawMessage(`{"stats":[{"label":"x","value":"1"}]}`),
		SchemaVersion: 1,
	}
	data, err := upgradeRecord(domain.KeyAbout, rec)
	require.NoError(t, err)

	var about domain.AboutContent
	require.NoError(t, json.Unmarshal(data, &about))
	require.Equal(t, []domain.Stat{{Label: "x", Value: "1"}}, about.Stats)
	require.Equal(t, defaultValues(), about.Values)
}

func TestUpgradeRecord_Errors(t *testing.T) {
	_, err := upgradeRecord(domain.KeyAbout, domain.Record{Data: json.RawMessage(`[1]`), SchemaVersion: 1})
	require.Error(t, err)

	_, err = upgradeRecord(domain.KeyHero, domain.Record{Data: json.RawMessage(`{}`), SchemaVersion: 2})
	require.ErrorContains(t, err, "newer than supported")
}
