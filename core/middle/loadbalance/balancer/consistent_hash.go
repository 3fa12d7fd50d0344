package balancer

import (
	"github.com/lafikl/consistent"
	"github.com/nyan233/mmh3/core/common/logger"
	"github.com/nyan233/mmh3/core/middle/loadbalance"
)

type consistentHash struct {
	absBalance
	chNodes *consistent.Consistent
}

func NewConsistentHash() Balancer {
	return &consistentHash{chNodes: consistent.New()}
}

func (c *consistentHash) Scheme() string {
	return "consistentHash"
}

func (c *consistentHash) IncNotify(keys []int, nodes []*loadbalance.RpcNode) {
	if len(keys) != len(nodes) {
		logger.DefaultLogger.Warn("balancer inc notify keys(%d) and nodes(%d) length mismatch", len(keys), len(nodes))
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range keys {
		if v < 0 || v >= len(c.nodes) || nodes[k] == nil {
			continue
		}
		if old := c.nodes[v]; old != nil {
			c.chNodes.Remove(old.Address)
		}
		c.nodes[v] = nodes[k]
		c.chNodes.Add(nodes[k].Address)
	}
}

func (c *consistentHash) FullNotify(nodes []*loadbalance.RpcNode) {
	ring := consistent.New()
	for _, v := range nodes {
		if v == nil {
			continue
		}
		ring.Add(v.Address)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = nodes
	c.chNodes = ring
	logger.DefaultLogger.Debug("consistent hash ring rebuilt, nodes = %d", len(nodes))
}

func (c *consistentHash) Target(service string) (loadbalance.RpcNode, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.nodes) == 0 {
		return loadbalance.RpcNode{}, ErrNoAvailableNode
	}
	addr, err := c.chNodes.Get(service)
	if err != nil {
		return loadbalance.RpcNode{}, err
	}
	for _, node := range c.nodes {
		if node != nil && node.Address == addr {
			return *node, nil
		}
	}
	return loadbalance.RpcNode{Address: addr}, nil
}
