package riot

import "encoding/json"

// Match, Timeline, ActiveGame and ActiveParticipant keep the body Riot sent.
// Encoding one of them returns those bytes unchanged, so fields the structs
// do not model survive the round trip through the proxy. Values built in
// code, with no upstream body, encode from their fields.

type matchFields Match

func (m *Match) UnmarshalJSON(b []byte) error {
	var f matchFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Match(f)
	m.raw = keep(b)
	return nil
}

func (m Match) MarshalJSON() ([]byte, error) {
	if m.raw != nil {
		return m.raw, nil
	}
	return json.Marshal(matchFields(m))
}

type timelineFields Timeline

func (t *Timeline) UnmarshalJSON(b []byte) error {
	var f timelineFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*t = Timeline(f)
	t.raw = keep(b)
	return nil
}

func (t Timeline) MarshalJSON() ([]byte, error) {
	if t.raw != nil {
		return t.raw, nil
	}
	return json.Marshal(timelineFields(t))
}

type activeGameFields ActiveGame

func (g *ActiveGame) UnmarshalJSON(b []byte) error {
	var f activeGameFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*g = ActiveGame(f)
	g.raw = keep(b)
	return nil
}

func (g ActiveGame) MarshalJSON() ([]byte, error) {
	if g.raw != nil {
		return g.raw, nil
	}
	return json.Marshal(activeGameFields(g))
}

type activeParticipantFields ActiveParticipant

func (p *ActiveParticipant) UnmarshalJSON(b []byte) error {
	var f activeParticipantFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = ActiveParticipant(f)
	p.raw = keep(b)
	return nil
}

func (p ActiveParticipant) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	return json.Marshal(activeParticipantFields(p))
}

// MergeJSON encodes base and sets extra on top of the resulting object.
// base must encode to a JSON object.
func MergeJSON(base any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	for k, v := range extra {
		enc, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = enc
	}
	return json.Marshal(fields)
}

func keep(b []byte) json.RawMessage {
	if b == nil || string(b) == "null" {
		return nil
	}
	return append(json.RawMessage(nil), b...)
}
