package battlemap

import (
	"fmt"
	"strconv"
	"strings"
)

// MapPointResource is a kind of object that may be spawned on a map point.
// Codes are shared with the matching MapPointStatus.
type MapPointResource int

const (
	ResourceChest     = MapPointResource(StatusChest)
	ResourceMonster   = MapPointResource(StatusMonster)
	ResourceFieldBoss = MapPointResource(StatusFieldBoss)
)

// Resources lists every resource kind in ascending code order.
// Validation and encoding walk resource maps in this order.
var Resources = []MapPointResource{ResourceChest, ResourceMonster, ResourceFieldBoss}

// Code returns the numeric code of the resource kind.
func (r MapPointResource) Code() int {
	return int(r)
}

// Valid reports whether r is a known resource kind.
func (r MapPointResource) Valid() bool {
	return r >= ResourceChest && r <= ResourceFieldBoss
}

// Status returns the point status with the same code.
func (r MapPointResource) Status() MapPointStatus {
	return MapPointStatus(r)
}

func (r MapPointResource) String() string {
	if !r.Valid() {
		return "MapPointResource(" + strconv.Itoa(int(r)) + ")"
	}
	return MapPointStatus(r).String()
}

// ParseMapPointResource casts a resource token to a resource kind. Accepted
// tokens are the numeric code ("3", "4", "5") and the lower-case name
// ("chest", "monster", "field_boss"), case-insensitive.
func ParseMapPointResource(raw string) (MapPointResource, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if r := MapPointResource(n); r.Valid() {
			return r, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownResourceType, raw)
	}
	for _, r := range Resources {
		if strings.EqualFold(raw, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResourceType, raw)
}
