// Package policy compiles TOML listener policies into menu listeners.
package policy

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/mrhaoxx/invmenu/listener"
	"github.com/mrhaoxx/invmenu/nbt"
)

// CatchAllKey selects the catch-all entry in Slots, as does "-1".
const CatchAllKey = "any"

type Policy struct {
	Blacklist  []int             `toml:"blacklist"`
	Whitelist  []int             `toml:"whitelist"`
	RequireTag []TagRule         `toml:"require_tag"`
	ForbidTag  []TagRule         `toml:"forbid_tag"`
	Slots      map[string]Policy `toml:"slots"`
}

type TagRule struct {
	Name string `toml:"name"`
	// Kind is a tag kind name, empty for any kind.
	Kind string `toml:"kind"`
}

type ConfigFailErr struct {
	Field  string
	Reason string
}

func (c ConfigFailErr) Error() string {
	return "config error: " + c.Field + ": " + c.Reason
}

func Decode(data string) (*Policy, error) {
	var p Policy
	md, err := toml.Decode(data, &p)
	if err != nil {
		return nil, err
	}
	return p.checked(md)
}

func Load(path string) (*Policy, error) {
	var p Policy
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("load policy %s: %w", path, err)
	}
	return p.checked(md)
}

// checked rejects keys the schema does not know, then validates.
func (p *Policy) checked(md toml.MetaData) (*Policy, error) {
	var err error
	for _, key := range md.Undecoded() {
		err = multierr.Append(err, ConfigFailErr{key.String(), "unknown key"})
	}
	err = multierr.Append(err, p.Validate())
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports every problem of the policy and its slot policies.
func (p *Policy) Validate() error {
	return p.validate("")
}

func (p *Policy) validate(prefix string) (err error) {
	for _, s := range p.Blacklist {
		if s < 0 {
			err = multierr.Append(err, ConfigFailErr{prefix + "blacklist", "negative slot " + strconv.Itoa(s)})
		}
	}
	for _, s := range p.Whitelist {
		if s < 0 {
			err = multierr.Append(err, ConfigFailErr{prefix + "whitelist", "negative slot " + strconv.Itoa(s)})
		}
	}
	err = multierr.Append(err, validateTags(prefix+"require_tag", p.RequireTag))
	err = multierr.Append(err, validateTags(prefix+"forbid_tag", p.ForbidTag))
	seen := make(map[int]string, len(p.Slots))
	for key, sub := range p.Slots {
		slot, keyErr := parseSlotKey(key)
		if keyErr != nil {
			err = multierr.Append(err, ConfigFailErr{prefix + "slots", keyErr.Error()})
			continue
		}
		if other, ok := seen[slot]; ok {
			err = multierr.Append(err, ConfigFailErr{prefix + "slots", fmt.Sprintf("keys %q and %q name the same slot", other, key)})
		}
		seen[slot] = key
		err = multierr.Append(err, sub.validate(prefix+"slots."+key+"."))
	}
	return err
}

func validateTags(field string, rules []TagRule) (err error) {
	for i, r := range rules {
		f := fmt.Sprintf("%s[%d]", field, i)
		if r.Name == "" {
			err = multierr.Append(err, ConfigFailErr{f, "empty tag name"})
		}
		if _, kindErr := nbt.ParseKind(r.Kind); kindErr != nil {
			err = multierr.Append(err, ConfigFailErr{f, kindErr.Error()})
		}
	}
	return err
}

func parseSlotKey(key string) (int, error) {
	if key == CatchAllKey {
		return listener.AnySlot, nil
	}
	slot, err := strconv.Atoi(key)
	if err != nil || slot < listener.AnySlot {
		return 0, fmt.Errorf("invalid slot key %q", key)
	}
	return slot, nil
}

// Build compiles the policy for menu. Rules run in order: blacklist,
// whitelist, required tags, forbidden tags, then the slot policies. An empty
// whitelist is not applied. An invalid policy is refused with the errors of
// Validate.
func (p *Policy) Build(menu listener.Menu) (listener.Listener, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return listener.Multiple(menu, p.rules(menu)...), nil
}

// rules expects a validated policy.
func (p *Policy) rules(menu listener.Menu) []listener.Listener {
	var rules []listener.Listener
	if len(p.Blacklist) > 0 {
		rules = append(rules, listener.BlacklistSlots(p.Blacklist...))
	}
	if len(p.Whitelist) > 0 {
		rules = append(rules, listener.WhitelistSlots(p.Whitelist...))
	}
	for _, r := range p.RequireTag {
		kind, _ := nbt.ParseKind(r.Kind)
		rules = append(rules, listener.OnlyItemsWithTag(r.Name, kind))
	}
	for _, r := range p.ForbidTag {
		kind, _ := nbt.ParseKind(r.Kind)
		rules = append(rules, listener.OnlyItemsWithoutTag(r.Name, kind))
	}
	if len(p.Slots) > 0 {
		slots := make(map[int]listener.Listener, len(p.Slots))
		for key, sub := range p.Slots {
			slot, _ := parseSlotKey(key)
			slots[slot] = listener.MultipleReadWrite(sub.rules(menu)...)
		}
		rules = append(rules, listener.SlotSpecific(menu, slots))
	}
	return rules
}
