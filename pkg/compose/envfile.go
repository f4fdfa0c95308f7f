package compose

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	corev1 "k8s.io/api/core/v1"
)

// buildEnv merges the environment map with every referenced env file, in
// declaration order. Later definitions override earlier ones. Env files
// must resolve to paths inside workingDir; a missing file is an error only
// when the reference is required.
func buildEnv(svc *Service, workingDir string) ([]corev1.EnvVar, error) {
	env := make([]corev1.EnvVar, 0, len(svc.Environment))
	index := make(map[string]int, len(svc.Environment))
	for _, entry := range svc.Environment {
		var value string
		if entry.Value != nil {
			value = *entry.Value
		}
		if i, ok := index[entry.Name]; ok {
			env[i].Value = value
			continue
		}
		index[entry.Name] = len(env)
		env = append(env, corev1.EnvVar{Name: entry.Name, Value: value})
	}

	for _, ref := range svc.EnvFile {
		if err := mergeEnvFile(&env, index, ref, workingDir); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func mergeEnvFile(env *[]corev1.EnvVar, index map[string]int, ref EnvFileRef, workingDir string) error {
	if filepath.IsAbs(ref.Path) {
		return errEnvFileOutOfBounds(ref.Path)
	}

	resolved, err := filepath.EvalSymlinks(filepath.Join(workingDir, ref.Path))
	if err != nil {
		if ref.Required {
			return errOther("Failed to canonicalize env_file path %s: %v", filepath.Join(workingDir, ref.Path), err)
		}
		return nil
	}
	if !isWithin(workingDir, resolved) {
		return errEnvFileOutOfBounds(resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if ref.Required {
			return errEnvFileRead(resolved, err)
		}
		return nil
	}
	vars, err := godotenv.Unmarshal(string(data))
	if err != nil {
		if ref.Required {
			return errEnvFileParse(resolved, err)
		}
		return nil
	}

	// godotenv returns a map; sort for a stable manifest.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if i, ok := index[name]; ok {
			(*env)[i].Value = vars[name]
			continue
		}
		index[name] = len(*env)
		*env = append(*env, corev1.EnvVar{Name: name, Value: vars[name]})
	}
	return nil
}

func isWithin(root, path string) bool {
	return path == root || strings.HasPrefix(path, root+string(os.PathSeparator))
}
