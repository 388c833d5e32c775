package smtp_client

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"net/smtp"
	"strconv"
	"sync"
	"time"

	"github.com/knadh/smtppool"
)

// SmtpClients sends mails round-robin over a set of pooled connections.
// Handlers call SendMail from goroutines, so the counter and the pool slice
// are guarded by the mutex.
type SmtpClients struct {
	mu             sync.Mutex
	servers        SmtpServerList
	connectionPool []*smtppool.Pool
	counter        uint64
}

func NewSmtpClients(config SmtpServerList) (*SmtpClients, error) {
	sc := &SmtpClients{
		servers:        config,
		counter:        0,
		connectionPool: initConnectionPool(config),
	}
	if len(sc.connectionPool) < 1 {
		panic("no smtp server connection in the pool")
	}
	return sc, nil
}

// nextPool advances the round-robin counter and returns the selected pool
// index. Reconnects all pools when none are left.
func (sc *SmtpClients) nextPool() (int, *smtppool.Pool, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if len(sc.connectionPool) < 1 {
		sc.connectionPool = initConnectionPool(sc.servers)
		if len(sc.connectionPool) < 1 {
			return 0, nil, errors.New("no smtp servers available")
		}
	}

	sc.counter += 1
	index := int(sc.counter % uint64(len(sc.connectionPool)))
	return index, sc.connectionPool[index], nil
}

// replacePool swaps the pool at index after a reconnect.
func (sc *SmtpClients) replacePool(index int, pool *smtppool.Pool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if index < len(sc.connectionPool) {
		sc.connectionPool[index] = pool
	}
}

func initConnectionPool(serverList SmtpServerList) []*smtppool.Pool {
	connectionPools := []*smtppool.Pool{}
	for _, server := range serverList.Servers {
		pool, err := connectToPool(server)
		if err != nil {
			slog.Error("error setting up connection pool", slog.String("error", err.Error()), slog.String("server", server.Address()))
			continue
		}
		connectionPools = append(connectionPools, pool)
	}
	return connectionPools
}

func connectToPool(server SmtpServer) (*smtppool.Pool, error) {
	auth := smtp.PlainAuth(
		"",
		server.AuthData.Username,
		server.AuthData.Password,
		server.Host,
	)
	if server.AuthData.Username == "" && server.AuthData.Password == "" {
		auth = nil
	}

	tlsOpts := &tls.Config{
		InsecureSkipVerify: server.InsecureSkipVerify,
		ServerName:         server.Host,
	}
	port, err := strconv.Atoi(server.Port)
	if err != nil {
		return nil, err
	}

	pool, err := smtppool.New(smtppool.Opt{
		Host:            server.Host,
		Port:            port,
		MaxConns:        server.Connections,
		IdleTimeout:     time.Duration(server.SendTimeout) * time.Second,
		PoolWaitTimeout: time.Duration(server.SendTimeout) * time.Second,
		TLSConfig:       tlsOpts,
		Auth:            auth,
	})
	return pool, err
}
