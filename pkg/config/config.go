// Package config stores named dollcode character sets in a yaml file,
// by default ~/.dollcode/config.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/Isolyth/dollcode/pkg/dollcode"
)

// Charset is one named character set. Empty symbol fields fall back to
// the corresponding symbol of the built-in default set, so a config entry
// may override just the separator, say.
type Charset struct {
	Name      string `yaml:"name"`
	Char1     string `yaml:"char1"`
	Char2     string `yaml:"char2"`
	Char3     string `yaml:"char3"`
	Separator string `yaml:"separator"`
}

// CharSet resolves the entry into a codec character set, filling empty
// fields from dollcode.Default. A nil receiver resolves to the default
// set unchanged.
func (c *Charset) CharSet() dollcode.CharSet {
	cs := dollcode.Default
	if c == nil {
		return cs
	}
	if c.Char1 != "" {
		cs.Char1 = c.Char1
	}
	if c.Char2 != "" {
		cs.Char2 = c.Char2
	}
	if c.Char3 != "" {
		cs.Char3 = c.Char3
	}
	if c.Separator != "" {
		cs.Separator = c.Separator
	}
	return cs
}

type Config struct {
	CurrentCharset string `yaml:"current-charset"`
	// CharsetOverride is a temporary selection from the command line; it
	// wins over CurrentCharset and is never written back.
	CharsetOverride string     `yaml:"-"`
	Charsets        []*Charset `yaml:"charsets"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

func (c *Config) HasCharset(name string) bool {
	for _, cs := range c.Charsets {
		if cs.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) SetCurrentCharset(name string) error {
	var oldCharset string
	if c.ActiveCharset() != nil {
		oldCharset = c.ActiveCharset().Name
	}
	for _, cs := range c.Charsets {
		if cs.Name == name {
			c.CurrentCharset = name

			if err := c.Write(); err != nil {
				// "Revert" change to the struct, either everything is
				// successful or nothing.
				c.CurrentCharset = oldCharset
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find charset with name %v", name)
}

// AddCharset appends or replaces the entry with the same name and
// persists the config.
func (c *Config) AddCharset(cs *Charset) error {
	for i, existing := range c.Charsets {
		if existing.Name == cs.Name {
			c.Charsets[i] = cs
			return c.Write()
		}
	}
	c.Charsets = append(c.Charsets, cs)
	return c.Write()
}

// RemoveCharset deletes the named entry and persists the config. When the
// removed entry was current, the current selection is cleared as well.
func (c *Config) RemoveCharset(name string) error {
	for i, cs := range c.Charsets {
		if cs.Name == name {
			c.Charsets = append(c.Charsets[:i], c.Charsets[i+1:]...)
			if c.CurrentCharset == name {
				c.CurrentCharset = ""
			}
			return c.Write()
		}
	}
	return fmt.Errorf("could not find charset with name %v", name)
}

func (c *Config) ActiveCharset() *Charset {
	if c == nil {
		return nil
	}

	toSearch := c.CharsetOverride
	if c.CharsetOverride == "" {
		toSearch = c.CurrentCharset
	}

	if toSearch == "" {
		return nil
	}

	for _, cs := range c.Charsets {
		if cs.Name == toSearch {
			// Make a copy, using a pointer leads to unintended behavior
			// where modifications on the active charset are written back
			// into the config
			c := *cs
			return &c
		}
	}
	return nil
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(&c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	return nil
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".dollcode", "config"), nil
}
