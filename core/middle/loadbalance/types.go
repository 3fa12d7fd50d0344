package loadbalance

type RpcNode struct {
	Address string
	Weight  int
}
