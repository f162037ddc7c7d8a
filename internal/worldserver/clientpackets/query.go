package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// QueryPlayerName is answered with QueryPlayerNameResponse.
type QueryPlayerName struct {
	Player model.ObjectGuid
}

// ParseQueryPlayerName parses QueryPlayerName packet.
func ParseQueryPlayerName(data []byte) (*QueryPlayerName, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Player: %w", err)
	}
	return &QueryPlayerName{Player: g}, nil
}
