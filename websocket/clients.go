package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one connected editor session.
type Client struct {
	ID     string
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

var (
	clients   = make(map[string]*Client)
	clientsMu sync.RWMutex
)

func registerClient(id string, conn *websocket.Conn) *Client {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	c := &Client{ID: id, Conn: conn}
	clients[id] = c
	return c
}

func unregisterClient(id string) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	delete(clients, id)
}

func allClients() []*Client {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	all := make([]*Client, 0, len(clients))
	for _, c := range clients {
		all = append(all, c)
	}
	return all
}
