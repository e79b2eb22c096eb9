package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/slighter12/go-lib/database/postgres"
)

const replicaEnvPrefix = "POSTGRES_REPLICAS_"

var environ = os.Environ

// canonicalizeEnvKey turns POSTGRES_MASTER_USERNAME into postgres.master.userName
// by walking the loaded YAML tree. Segments with no YAML counterpart are lowercased.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	var path []string
	node := tree

	for _, segment := range strings.Split(rawKey, "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return strings.ToLower(segment), nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnviron collects POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// entries. A replica needs both host and port; indexes may have gaps.
func replicasFromEnviron(vars []string) []postgres.ConnectionConfig {
	byIndex := make(map[int]*postgres.ConnectionConfig)

	for _, kv := range vars {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, replicaEnvPrefix) {
			continue
		}

		idx, field, ok := strings.Cut(strings.TrimPrefix(key, replicaEnvPrefix), "_")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			continue
		}

		replica := byIndex[n]
		if replica == nil {
			replica = &postgres.ConnectionConfig{}
			byIndex[n] = replica
		}

		switch field {
		case "HOST":
			replica.Host = value
		case "PORT":
			replica.Port = value
		case "USERNAME":
			replica.UserName = value
		case "PASSWORD":
			replica.Password = value
		}
	}

	indexes := make([]int, 0, len(byIndex))
	for n, replica := range byIndex {
		if replica.Host != "" && replica.Port != "" {
			indexes = append(indexes, n)
		}
	}
	sort.Ints(indexes)

	replicas := make([]postgres.ConnectionConfig, 0, len(indexes))
	for _, n := range indexes {
		replicas = append(replicas, *byIndex[n])
	}

	return replicas
}
