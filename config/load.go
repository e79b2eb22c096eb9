package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// FileEnvKey names a config file to load instead of searching for one.
const FileEnvKey = "ADMISSION_CONFIG_FILE"

// LoadWithEnv reads <name>.yaml into a T and applies environment overrides.
// Each directory in dirs is taken relative to the working directory and tried
// after the working directory itself.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	// Env keys are matched against the YAML tree so camelCase segments survive.
	tree := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, tree), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	out := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func locate(name string, dirs []string) (string, error) {
	if explicit := strings.TrimSpace(os.Getenv(FileEnvKey)); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", FileEnvKey, explicit)
		}

		return explicit, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := make([]string, 0, len(dirs)+1)
	candidates = append(candidates, filepath.Join(wd, name+".yaml"))
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, name+".yaml"))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found (tried %s)", name, strings.Join(candidates, ", "))
}
