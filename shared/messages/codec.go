package messages

import (
	"github.com/burrowgames/gridface/shared/faults"
	"github.com/hashicorp/go-msgpack/v2/codec"
)

var handle codec.MsgpackHandle

func marshal(op string, v any) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, &handle).Encode(v); err != nil {
		return nil, faults.Decodef(op, "encode: %v", err)
	}
	return out, nil
}

func unmarshal(op string, data []byte, v any) error {
	if err := codec.NewDecoderBytes(data, &handle).Decode(v); err != nil {
		return faults.Decodef(op, "decode %d bytes: %v", len(data), err)
	}
	return nil
}

// EncodeSprites serializes a sprite batch for the sprite topic.
func EncodeSprites(batch []Sprite) ([]byte, error) {
	return marshal("messages.EncodeSprites", batch)
}

// DecodeSprites deserializes a sprite topic payload.
func DecodeSprites(data []byte) ([]Sprite, error) {
	var batch []Sprite
	if err := unmarshal("messages.DecodeSprites", data, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// EncodeMode serializes an interaction mode for the gameplay_state topic.
func EncodeMode(m InteractionMode) ([]byte, error) {
	return marshal("messages.EncodeMode", m)
}

// DecodeMode deserializes a gameplay_state payload.
func DecodeMode(data []byte) (InteractionMode, error) {
	var m InteractionMode
	if err := unmarshal("messages.DecodeMode", data, &m); err != nil {
		return 0, err
	}
	return m, nil
}

// EncodeCell serializes a grid coordinate for the info topic.
func EncodeCell(c CellCoord) ([]byte, error) {
	return marshal("messages.EncodeCell", c)
}

// DecodeCell deserializes an info payload.
func DecodeCell(data []byte) (CellCoord, error) {
	var c CellCoord
	if err := unmarshal("messages.DecodeCell", data, &c); err != nil {
		return CellCoord{}, err
	}
	return c, nil
}

// EncodeMenuIndex serializes a menu option index for the select_response topic.
func EncodeMenuIndex(i int) ([]byte, error) {
	return marshal("messages.EncodeMenuIndex", i)
}

// DecodeMenuIndex deserializes a select_response payload.
func DecodeMenuIndex(data []byte) (int, error) {
	var i int
	if err := unmarshal("messages.DecodeMenuIndex", data, &i); err != nil {
		return 0, err
	}
	return i, nil
}
