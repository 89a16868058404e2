package parser

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/rmitchellscott/wxdecode/value"
)

// Cloud is one reported cloud layer. Altitude is in hundreds of feet and nil
// when the height was not reported.
type Cloud struct {
	Repr     string `json:"repr" yaml:"repr"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Altitude *int   `json:"altitude" yaml:"altitude"`
	Modifier string `json:"modifier,omitempty" yaml:"modifier,omitempty"`
}

// Description returns the plain-language name of the layer type.
func (c Cloud) Description() string {
	if desc, ok := cloudTranslations[c.Type]; ok {
		return desc
	}
	return c.Type
}

// SanitizeCloud repairs a cloud token: a misplaced modifier letter is moved
// behind the height, an O read as a zero is fixed, and a two-digit height is
// padded to three.
func SanitizeCloud(cloud string) string {
	if len(cloud) < 4 {
		return cloud
	}
	if !isDigit(cloud[3]) && cloud[3] != '/' {
		if cloud[3] == 'O' {
			cloud = cloud[:3] + "0" + cloud[4:]
		} else {
			cloud = cloud[:3] + cloud[4:] + cloud[3:4]
		}
	}
	if !strings.HasPrefix(cloud, "VV") {
		if len(cloud) < 6 || (!isDigit(cloud[5]) && cloud[4] != '/') {
			cloud = cloud[:3] + "0" + cloud[3:]
		}
	}
	return cloud
}

// SplitCloud breaks a cloud token into its type, altitude and modifier.
func SplitCloud(cloud string) (string, *int, string) {
	cloud = SanitizeCloud(cloud)
	var split []string
	if strings.HasPrefix(cloud, "VV") {
		split = append(split, cloud[:2])
		cloud = cloud[2:]
	}
	for len(cloud) >= 3 {
		split = append(split, cloud[:3])
		cloud = cloud[3:]
	}
	if cloud != "" {
		split = append(split, cloud)
	}

	var (
		typ, modifier string
		altitude      *int
	)
	if len(split) > 0 && !value.IsUnknown(split[0]) {
		typ = split[0]
	}
	if len(split) > 1 && !value.IsUnknown(split[1]) {
		if alt, err := strconv.Atoi(split[1]); err == nil {
			altitude = ptr.To(alt)
		}
	}
	if len(split) > 2 && !value.IsUnknown(split[2]) {
		modifier = split[2]
	}
	return typ, altitude, modifier
}

func MakeCloud(cloud string) Cloud {
	typ, altitude, modifier := SplitCloud(cloud)
	return Cloud{Repr: cloud, Type: typ, Altitude: altitude, Modifier: modifier}
}

// GetClouds removes every cloud layer from the token list. Layers are sorted
// by altitude when every layer has one, and kept in report order otherwise.
func GetClouds(wxdata []string) ([]string, []Cloud) {
	wxdata = slices.Clone(wxdata)
	var clouds []Cloud
	for i := len(wxdata) - 1; i >= 0; i-- {
		item := wxdata[i]
		if !slices.Contains(cloudList, substr(item, 0, 3)) && !strings.HasPrefix(item, "VV") {
			continue
		}
		wxdata = slices.Delete(wxdata, i, i+1)
		// FEW///
		if head, _, found := strings.Cut(item, "/"); found {
			item = head
		}
		clouds = append(clouds, MakeCloud(item))
	}
	slices.Reverse(clouds)

	sortable := !slices.ContainsFunc(clouds, func(c Cloud) bool { return c.Altitude == nil })
	if sortable {
		slices.SortStableFunc(clouds, func(a, b Cloud) int {
			return cmp.Or(cmp.Compare(*a.Altitude, *b.Altitude), cmp.Compare(a.Type, b.Type))
		})
	}
	return wxdata, clouds
}

// GetCeiling returns the first layer that forms a ceiling, or nil.
func GetCeiling(clouds []Cloud) *Cloud {
	for i := range clouds {
		if clouds[i].Altitude != nil && slices.Contains(ceilingTypes, clouds[i].Type) {
			return &clouds[i]
		}
	}
	return nil
}
