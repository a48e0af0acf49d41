package compare

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	tokenVersion  = "v1"
	binaryVersion = byte(1)
)

// Token returns the persisted form of the Comparer: a format version and
// the BCP 47 name of its locale, e.g. "v1:sv-SE".
func (c *Comparer) Token() string {
	return tokenVersion + ":" + c.tag.String()
}

// ParseToken reconstructs a Comparer from a token produced by Token. An
// empty token or one without a locale yields ErrMissingConfiguration; any
// other undecodable token yields ErrMalformedConfiguration, which also
// matches ErrMissingConfiguration.
//
// The returned Comparer may be shared with other callers of ForLocale.
func ParseToken(token string) (*Comparer, error) {
	tag, err := parseToken(token)
	if err != nil {
		return nil, err
	}
	return ForLocale(tag.String())
}

func parseToken(token string) (language.Tag, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return language.Und, ErrMissingConfiguration
	}
	version, name, ok := strings.Cut(token, ":")
	if !ok || version != tokenVersion {
		return language.Und, fmt.Errorf("%w: unsupported token %q", ErrMalformedConfiguration, token)
	}
	return parseLocaleName(name)
}

func parseLocaleName(name string) (language.Tag, error) {
	if name == "" {
		return language.Und, fmt.Errorf("%w: no locale", ErrMissingConfiguration)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrMalformedConfiguration, name, err)
	}
	return tag, nil
}

// checkWritable refuses the process-wide comparers handed out by Default,
// DefaultInvariant and ForLocale; other holders of them rely on their
// locale never changing.
func (c *Comparer) checkWritable() error {
	if c.shared {
		return fmt.Errorf("%w: cannot decode into shared comparer %s", ErrInvalidArgument, c.tag)
	}
	return nil
}

// bind replaces the receiver with a private Comparer for tag.
func (c *Comparer) bind(tag language.Tag) {
	*c = *NewWithTag(tag)
}

func (c *Comparer) MarshalText() ([]byte, error) {
	return []byte(c.Token()), nil
}

func (c *Comparer) UnmarshalText(text []byte) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	tag, err := parseToken(string(text))
	if err != nil {
		return err
	}
	c.bind(tag)
	return nil
}

func (c *Comparer) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Token())
}

// UnmarshalJSON rejects null instead of leaving the Comparer unbound.
func (c *Comparer) UnmarshalJSON(data []byte) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if string(data) == "null" {
		return ErrMissingConfiguration
	}
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedConfiguration, err)
	}
	return c.UnmarshalText([]byte(token))
}

func (c *Comparer) MarshalYAML() (interface{}, error) {
	return c.Token(), nil
}

func (c *Comparer) UnmarshalYAML(value *yaml.Node) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	var token string
	if err := value.Decode(&token); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedConfiguration, err)
	}
	return c.UnmarshalText([]byte(token))
}

// MarshalBinary encodes the Comparer as a version byte followed by the
// uvarint length of the locale name and the name itself.
func (c *Comparer) MarshalBinary() ([]byte, error) {
	name := c.tag.String()
	b := make([]byte, 1+binary.MaxVarintLen64+len(name))
	b[0] = binaryVersion
	n := 1 + binary.PutUvarint(b[1:], uint64(len(name)))
	n += copy(b[n:], name)
	return b[:n], nil
}

func (c *Comparer) UnmarshalBinary(data []byte) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrMissingConfiguration
	}
	if data[0] != binaryVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedConfiguration, data[0])
	}
	size, n := binary.Uvarint(data[1:])
	if n <= 0 || uint64(len(data)-1-n) != size {
		return fmt.Errorf("%w: bad locale length", ErrMalformedConfiguration)
	}
	tag, err := parseLocaleName(string(data[1+n:]))
	if err != nil {
		return err
	}
	c.bind(tag)
	return nil
}
