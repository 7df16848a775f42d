package jsonparser

import (
	"strconv"

	"github.com/valyala/fastjson"
)

var Fastjson Parser = &fastjsonParser{}

type fastjsonParser struct{}

func (p *fastjsonParser) Parse(jsonStr string) (Node, error) {
	root, err := fastjson.Parse(jsonStr)
	if err != nil {
		return nil, err
	}
	return &fastjsonNode{node: root}, nil
}

type fastjsonNode struct {
	node *fastjson.Value
}

func (n *fastjsonNode) Exists() bool {
	return n.node != nil
}

func (n *fastjsonNode) Type() string {
	if n.node == nil {
		return "unknown"
	}
	return n.node.Type().String()
}

func (n *fastjsonNode) Get(key string) Node {
	if n.node == nil {
		return n
	}
	return &fastjsonNode{node: n.node.Get(key)}
}

func (n *fastjsonNode) Index(i int) Node {
	if n.node == nil {
		return n
	}
	return &fastjsonNode{node: n.node.Get(strconv.Itoa(i))}
}
