// Package store implements the local record namespace: a string-keyed store
// of JSON values living under one reserved prefix, with defaulted reads,
// swallowed write failures and whole-namespace export, restore and wipe.
package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/observe"
)

// Prefix is the reserved key prefix. Every record the application owns lives
// under it, so enumeration and wipes never touch foreign keys.
const Prefix = "namaa_"

// Record keys. One key holds one JSON value: either a singleton record or a
// date-indexed map.
const (
	KeyProfile         = Prefix + "profile"
	KeyStudy           = Prefix + "study"
	KeyQuran           = Prefix + "quran"
	KeyQuranConfig     = Prefix + "quran_config"
	KeyExpenses        = Prefix + "expense"
	KeyBudget          = Prefix + "budget"
	KeyDailyReview     = Prefix + "daily_review"
	KeyWeeklyReview    = Prefix + "weekly_review"
	KeyScreenTime      = Prefix + "screen_time"
	KeyTasbeeh         = Prefix + "tasbeeh"
	KeySettings        = Prefix + "settings"
	KeyPrayers         = Prefix + "prayers"
	KeyHabits          = Prefix + "habits"
	KeyHabitsConfig    = Prefix + "habits_config"
	KeyFocus           = Prefix + "focus"
	KeyRamadanLogs     = Prefix + "ramadan_logs"
	KeyRamadanConfig   = Prefix + "ramadan_config"
	KeyFootballProfile = Prefix + "football_profile"
	KeyFootballLogs    = Prefix + "football_logs"
	KeyEnabledFeatures = Prefix + "enabled_features"
	KeyChatHistory     = Prefix + "chat_history"
	KeyLocationConfig  = Prefix + "location_config"
	KeyAdhkarProgress  = Prefix + "adhkar_progress"
	KeyDailyToDo       = Prefix + "daily_todo"
)

// AllKeys returns every key the application may store, in a stable order.
func AllKeys() []string {
	return []string{
		KeyProfile, KeyStudy, KeyQuran, KeyQuranConfig, KeyExpenses,
		KeyBudget, KeyDailyReview, KeyWeeklyReview, KeyScreenTime,
		KeyTasbeeh, KeySettings, KeyPrayers, KeyHabits, KeyHabitsConfig,
		KeyFocus, KeyRamadanLogs, KeyRamadanConfig, KeyFootballProfile,
		KeyFootballLogs, KeyEnabledFeatures, KeyChatHistory,
		KeyLocationConfig, KeyAdhkarProgress, KeyDailyToDo,
	}
}

// IsKnownKey reports whether key belongs to the application's namespace
// contract. Restore paths drop anything else.
func IsKnownKey(key string) bool {
	for _, k := range AllKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Backend is the raw keyed storage a Namespace sits on. Implementations must
// be safe for concurrent use.
type Backend interface {
	// Get returns the raw value at key and whether it exists.
	Get(key string) (string, bool)
	// Set writes the raw value at key, creating or overwriting it.
	Set(key, value string) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists every stored key.
	Keys() ([]string, error)
	// Close releases backend resources.
	Close() error
}

// Namespace wraps a Backend with the application's read/write policy:
// reads never fail (corruption becomes the default, counted and logged),
// writes never propagate errors (failures are counted, logged and dropped).
type Namespace struct {
	backend Backend
	log     *zap.Logger
	metrics *observe.Metrics
}

// NewNamespace creates a Namespace over backend.
func NewNamespace(backend Backend, log *zap.Logger, metrics *observe.Metrics) *Namespace {
	return &Namespace{backend: backend, log: log, metrics: metrics}
}

// Close closes the underlying backend.
func (n *Namespace) Close() error { return n.backend.Close() }

// Get reads key into a value of type T, returning def when the key is
// missing or its value does not parse. It never writes.
func Get[T any](n *Namespace, key string, def T) T {
	raw, ok := n.backend.Get(key)
	if !ok || raw == "" || raw == "null" || raw == "undefined" {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		n.metrics.CorruptRecords.Inc()
		n.log.Warn("corrupt record, using default",
			zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// Put serializes v and writes it at key. A failed write is logged and
// dropped; callers continue as if it succeeded. This is the documented
// data-loss mode under storage pressure.
func Put[T any](n *Namespace, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		n.metrics.DroppedWrites.Inc()
		n.log.Error("record not serializable, write dropped",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := n.backend.Set(key, string(raw)); err != nil {
		n.metrics.DroppedWrites.Inc()
		n.log.Error("store write failed, write dropped",
			zap.String("key", key), zap.Error(err))
	}
}

// Delete removes key from the namespace. Failures are logged and dropped.
func (n *Namespace) Delete(key string) {
	if err := n.backend.Delete(key); err != nil {
		n.metrics.DroppedWrites.Inc()
		n.log.Error("store delete failed", zap.String("key", key), zap.Error(err))
	}
}

// ExportAll returns every prefixed key with its raw JSON value. Unparseable
// values are skipped so one corrupt record cannot poison a backup.
func (n *Namespace) ExportAll() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	keys, err := n.backend.Keys()
	if err != nil {
		n.log.Error("key enumeration failed, exporting nothing", zap.Error(err))
		return out
	}
	for _, key := range keys {
		if !IsKnownKey(key) {
			continue
		}
		raw, ok := n.backend.Get(key)
		if !ok || raw == "" {
			continue
		}
		if !json.Valid([]byte(raw)) {
			n.metrics.CorruptRecords.Inc()
			n.log.Warn("corrupt record skipped during export", zap.String("key", key))
			continue
		}
		out[key] = json.RawMessage(raw)
	}
	return out
}

// RestoreAll writes every recognized key from data into the namespace.
// Unknown keys are dropped. It does not clear first; callers wanting
// full-overwrite semantics call Wipe beforehand.
func (n *Namespace) RestoreAll(data map[string]json.RawMessage) {
	for key, raw := range data {
		if !IsKnownKey(key) {
			n.log.Debug("ignoring unknown key during restore", zap.String("key", key))
			continue
		}
		if err := n.backend.Set(key, string(raw)); err != nil {
			n.metrics.DroppedWrites.Inc()
			n.log.Error("restore write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// Wipe deletes every prefixed key except those listed in preserve. Used at
// account boundaries to keep one identity's records from leaking into the
// next session.
func (n *Namespace) Wipe(preserve ...string) {
	keep := make(map[string]bool, len(preserve))
	for _, k := range preserve {
		keep[k] = true
	}
	keys, err := n.backend.Keys()
	if err != nil {
		n.log.Error("key enumeration failed, wipe skipped", zap.Error(err))
		return
	}
	for _, key := range keys {
		if len(key) < len(Prefix) || key[:len(Prefix)] != Prefix || keep[key] {
			continue
		}
		n.Delete(key)
	}
}
