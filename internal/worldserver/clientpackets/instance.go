package clientpackets

// ResetInstances has no body fields.
type ResetInstances struct{}

// ParseResetInstances parses ResetInstances packet.
func ParseResetInstances(_ []byte) (*ResetInstances, error) {
	return &ResetInstances{}, nil
}
