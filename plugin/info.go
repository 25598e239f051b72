package plugin

import (
	"sort"
)

// Info publishes a name and the URL documenting it.
type Info struct {
	Name Name
	URL  string
}

func (i Info) String() string {
	if i.URL == "" {
		return i.Name.String()
	}

	return i.URL + " " + i.Name.String()
}

// SortInfos sorts by name and drops later duplicates of a name.
func SortInfos(infos []Info) []Info {
	seen := make(map[Name]bool, len(infos))
	out := make([]Info, 0, len(infos))

	for _, info := range infos {
		if seen[info.Name] {
			continue
		}

		seen[info.Name] = true
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// InfoNames returns the names of infos as strings.
func InfoNames(infos []Info) []string {
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name.String()
	}

	return names
}
