package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefaultConfig writes a commented default configuration file at the
// given path, creating parent directories as needed. Writes are atomic
// (temp file then rename) so a concurrent reader never sees a torn file.
func WriteDefaultConfig(path string) error {
	defaults := Defaults()

	doc := yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{
			{
				Kind: yaml.MappingNode,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: "schema_path", HeadComment: "Schema file used by validate/fmt/watch when -s is not given"},
					{Kind: yaml.ScalarNode, Value: defaults.SchemaPath},
					{Kind: yaml.ScalarNode, Value: "log_file", HeadComment: "Debug log destination; empty disables file logging"},
					{Kind: yaml.ScalarNode, Value: defaults.LogFile},
					{Kind: yaml.ScalarNode, Value: "debug"},
					{Kind: yaml.ScalarNode, Value: "false"},
					{Kind: yaml.ScalarNode, Value: "watch_debounce", HeadComment: "Debounce between a file change and revalidation"},
					{Kind: yaml.ScalarNode, Value: defaults.WatchDebounce.String()},
				},
			},
		},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".quench.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
