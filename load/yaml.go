package load

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/zxhio/j4on/value"
	"github.com/zxhio/j4on/xerrors"
	"gopkg.in/yaml.v3"
)

// loadYAML reads the first YAML document in the file and converts it into
// the value model. Trailing documents in a multi-document stream are
// rejected, mirroring the trailing-data rule for JSON input.
func loadYAML(path string) (value.Value, error) {
	file, err := os.Open(path)
	if err != nil {
		return value.Value{}, xerrors.WrapKV(err, xerrors.KeyFile, path)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return value.Value{}, xerrors.ErrorKV("empty document", xerrors.KeyFile, path)
		}
		return value.Value{}, xerrors.WrapKV(err, xerrors.KeyFile, path)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return value.Value{}, xerrors.ErrorKV("unexpected trailing document", xerrors.KeyFile, path)
	}

	root, err := parseYAMLNode(&doc)
	if err != nil {
		return value.Value{}, xerrors.WrapKV(err, xerrors.KeyFile, path)
	}
	return root, nil
}

func parseYAMLNode(node *yaml.Node) (value.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return value.NewNull(), nil
		}
		return parseYAMLNode(node.Content[0])
	case yaml.MappingNode:
		members := make([]value.Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			val, err := parseYAMLNode(node.Content[i+1])
			if err != nil {
				return value.Value{}, err
			}
			members = append(members, value.Member{Key: key.Value, Value: val})
		}
		return value.NewObject(members), nil
	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(node.Content))
		for _, child := range node.Content {
			elem, err := parseYAMLNode(child)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, elem)
		}
		return value.NewArray(elems), nil
	case yaml.ScalarNode:
		return parseYAMLScalar(node)
	case yaml.AliasNode:
		return parseYAMLNode(node.Alias)
	default:
		return value.Value{}, errors.Errorf("unknown yaml node(%d:%d) kind: %v, value: %v", node.Line, node.Column, node.Kind, node.Value)
	}
}

func parseYAMLScalar(node *yaml.Node) (value.Value, error) {
	switch node.Tag {
	case "!!null":
		return value.NewNull(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return value.Value{}, errors.Wrapf(err, "invalid bool scalar(%d:%d): %s", node.Line, node.Column, node.Value)
		}
		return value.NewBool(b), nil
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return value.Value{}, errors.Wrapf(err, "invalid number scalar(%d:%d): %s", node.Line, node.Column, node.Value)
		}
		return value.NewNumber(n), nil
	default:
		return value.NewString(node.Value), nil
	}
}
