package balancer

import (
	"github.com/nyan233/mmh3/core/common/logger"
	"github.com/nyan233/mmh3/core/middle/loadbalance"
	"sync"
)

type absBalance struct {
	mu    sync.RWMutex
	nodes []*loadbalance.RpcNode
}

func (b *absBalance) IncNotify(keys []int, nodes []*loadbalance.RpcNode) {
	if len(keys) != len(nodes) {
		logger.DefaultLogger.Warn("balancer inc notify keys(%d) and nodes(%d) length mismatch", len(keys), len(nodes))
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, v := range keys {
		if v < 0 || v >= len(b.nodes) {
			logger.DefaultLogger.Warn("balancer inc notify key %d out of range [0,%d)", v, len(b.nodes))
			continue
		}
		b.nodes[v] = nodes[k]
	}
}

func (b *absBalance) FullNotify(nodes []*loadbalance.RpcNode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nodes = nodes
	logger.DefaultLogger.Debug("balancer full notify, nodes = %d", len(nodes))
}

// pick 在读锁下按下标取节点
func (b *absBalance) pick(index func(n int) int) (loadbalance.RpcNode, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.nodes) == 0 {
		return loadbalance.RpcNode{}, ErrNoAvailableNode
	}
	node := b.nodes[index(len(b.nodes))]
	if node == nil {
		return loadbalance.RpcNode{}, ErrNoAvailableNode
	}
	return *node, nil
}
