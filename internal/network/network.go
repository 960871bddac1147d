// Package network holds the known network table and the set of networks a
// profile has switched on.
package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// Known network ids.
const (
	ARKMainnet = "ark.mainnet"
	ARKDevnet  = "ark.devnet"
)

// Known is the allow-list of network ids a deep link may name. Anything
// else is rejected before the enabled set is consulted.
var Known = map[string]models.NetworkDescriptor{
	ARKMainnet: {
		ID:         ARKMainnet,
		Coin:       "ARK",
		Nethash:    "6e84d08bd299ed97c212c886c98a57e36545c8f5d645ca7eeae63a8bd62d8988",
		PubKeyHash: 0x17,
		SLIP44:     111,
	},
	ARKDevnet: {
		ID:         ARKDevnet,
		Coin:       "ARK",
		Nethash:    "2a44f340d76ffc3df204c5f38cd355b7496c9065a1ade2ef92071436bd72e867",
		PubKeyHash: 0x1e,
		SLIP44:     1,
	},
}

// IsKnown reports whether id is on the allow-list.
func IsKnown(id string) bool {
	_, ok := Known[id]
	return ok
}

// EnabledSet is an immutable snapshot of enabled networks, unique by id.
// It may be empty.
type EnabledSet struct {
	byID map[string]models.NetworkDescriptor
}

// NewEnabledSet builds a set from descriptors. A later descriptor with the
// same id replaces an earlier one.
func NewEnabledSet(descriptors ...models.NetworkDescriptor) EnabledSet {
	byID := make(map[string]models.NetworkDescriptor, len(descriptors))
	for _, d := range descriptors {
		byID[d.ID] = d
	}
	return EnabledSet{byID: byID}
}

// Enable builds a set from known network ids.
func Enable(ids ...string) (EnabledSet, error) {
	descriptors := make([]models.NetworkDescriptor, 0, len(ids))
	for _, id := range ids {
		d, ok := Known[id]
		if !ok {
			return EnabledSet{}, fmt.Errorf("unknown network %q", id)
		}
		descriptors = append(descriptors, d)
	}
	return NewEnabledSet(descriptors...), nil
}

// ByID returns the enabled network with the given id.
func (s EnabledSet) ByID(id string) (models.NetworkDescriptor, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// ByNethash returns the enabled network with the given nethash. When two
// enabled networks share a nethash the one with the lowest id wins.
func (s EnabledSet) ByNethash(nethash string) (models.NetworkDescriptor, bool) {
	for _, d := range s.All() {
		if d.Nethash == nethash {
			return d, true
		}
	}
	return models.NetworkDescriptor{}, false
}

// HasCoin reports whether any enabled network uses coin, ignoring case.
func (s EnabledSet) HasCoin(coin string) bool {
	for _, d := range s.byID {
		if strings.EqualFold(d.Coin, coin) {
			return true
		}
	}
	return false
}

// All returns the enabled networks ordered by id.
func (s EnabledSet) All() []models.NetworkDescriptor {
	result := make([]models.NetworkDescriptor, 0, len(s.byID))
	for _, d := range s.byID {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Len returns the number of enabled networks.
func (s EnabledSet) Len() int {
	return len(s.byID)
}
