// Package config loads editor settings from a YAML file, a .env file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix namespaces every environment variable the editor reads
const EnvPrefix = "LINEEDIT_"

// Manager reads settings from environment variables
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
}

// DefaultManager implements the Manager interface. Keys are upper-cased and
// prefixed before the lookup, so "history_size" reads LINEEDIT_HISTORY_SIZE.
type DefaultManager struct {
	prefix string
}

// NewConfigManager creates a manager over the LINEEDIT_ variables
func NewConfigManager() Manager {
	return NewPrefixedManager(EnvPrefix)
}

// NewPrefixedManager creates a manager over variables starting with prefix.
// An empty prefix reads keys as given.
func NewPrefixedManager(prefix string) Manager {
	return &DefaultManager{prefix: prefix}
}

func (m *DefaultManager) name(key string) string {
	key = strings.ToUpper(key)
	if m.prefix == "" || strings.HasPrefix(key, m.prefix) {
		return key
	}
	return m.prefix + key
}

func (m *DefaultManager) lookup(key string) (string, string) {
	name := m.name(key)
	return name, os.Getenv(name)
}

// GetString gets a configuration value by key, returns error if not found
func (m *DefaultManager) GetString(key string) (string, error) {
	name, value := m.lookup(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", name)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *DefaultManager) GetStringWithDefault(key, defaultValue string) string {
	if _, value := m.lookup(key); value != "" {
		return value
	}
	return defaultValue
}

// GetInt gets an integer configuration value by key, returns error if not found or invalid
func (m *DefaultManager) GetInt(key string) (int, error) {
	name, value := m.lookup(key)
	if value == "" {
		return 0, fmt.Errorf("configuration key %s not found", name)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s has invalid integer value: %s", name, value)
	}
	return n, nil
}

// GetIntWithDefault gets an integer configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetIntWithDefault(key string, defaultValue int) int {
	n, err := m.GetInt(key)
	if err != nil {
		return defaultValue
	}
	return n
}
