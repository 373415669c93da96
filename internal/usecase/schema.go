package usecase

import (
	"encoding/json"
	"fmt"

	"studio-site/internal/domain"
)

// upgradeFunc rewrites a record's JSON from version v to v+1.
type upgradeFunc func(json.RawMessage) (json.RawMessage, error)

type schema struct {
	version  int
	upgrades map[int]upgradeFunc
}

// schemas lists collections whose record shape has changed. Anything not
// listed is at version 1.
var schemas = map[string]schema{
	domain.KeyAbout: {
		version:  2,
		upgrades: map[int]upgradeFunc{1: aboutAddStatsAndValues},
	},
}

func currentVersion(key string) int {
	if s, ok := schemas[key]; ok {
		return s.version
	}
	return 1
}

// upgradeRecord returns rec.Data migrated to the current version of its
// collection. Records without a version are treated as version 1.
func upgradeRecord(key string, rec domain.Record) (json.RawMessage, error) {
	version := rec.SchemaVersion
	if version <= 0 {
		version = 1
	}
	target := currentVersion(key)
	if version > target {
		return nil, fmt.Errorf("usecase: %s record %q has schema version %d, newer than supported %d", key, rec.ID, version, target)
	}
	data := rec.Data
	for v := version; v < target; v++ {
		up, ok := schemas[key].upgrades[v]
		if !ok {
			return nil, fmt.Errorf("usecase: %s has no upgrade from schema version %d", key, v)
		}
		next, err := up(data)
		if err != nil {
			return nil, fmt.Errorf("usecase: upgrade %s from version %d: %w", key, v, err)
		}
		data = next
	}
	return data, nil
}

// decodeRecord upgrades and unmarshals rec into out. Failures surface as
// INTERNAL_ERROR with the underlying decode error.
func decodeRecord(key string, rec domain.Record, out any) error {
	data, err := upgradeRecord(key, rec)
	if err != nil {
		return newError(ErrorInternal, "content_upgrade_error", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newError(ErrorInternal, "content_decode_error", fmt.Errorf("usecase: decode %s record %q: %w", key, rec.ID, err))
	}
	return nil
}

// aboutAddStatsAndValues fills the stats and values introduced in version 2
// with the site defaults.
func aboutAddStatsAndValues(data json.RawMessage) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if _, ok := fields["stats"]; !ok {
		raw, err := json.Marshal(defaultStats())
		if err != nil {
			return nil, err
		}
		fields["stats"] = raw
	}
	if _, ok := fields["values"]; !ok {
		raw, err := json.Marshal(defaultValues())
		if err != nil {
			return nil, err
		}
		fields["values"] = raw
	}
	return json.Marshal(fields)
}
