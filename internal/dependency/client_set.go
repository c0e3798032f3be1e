package dependency

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coursesite/coursesite/dep"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	rootcerts "github.com/hashicorp/go-rootcerts"
)

// ClientSet is a collection of clients that dependencies use to communicate
// with remote services like the course catalog.
type ClientSet struct {
	sync.RWMutex

	catalog *CatalogClient
}

var _ dep.Clients = (*ClientSet)(nil)

// CreateClientInput is used as input to the CreateClient functions.
type CreateClientInput struct {
	Address string
	AppID   string
	AppKey  string

	// Transport/TLS
	SSLEnabled bool
	SSLVerify  bool
	SSLCert    string
	SSLKey     string
	SSLCACert  string
	SSLCAPath  string
	ServerName string

	TransportDialKeepAlive       time.Duration
	TransportDialTimeout         time.Duration
	TransportDisableKeepAlives   bool
	TransportIdleConnTimeout     time.Duration
	TransportMaxIdleConns        int
	TransportMaxIdleConnsPerHost int
	TransportTLSHandshakeTimeout time.Duration

	// optional, principally for testing
	HttpClient *http.Client
}

// NewClientSet creates a new client set that is ready to accept clients.
func NewClientSet() *ClientSet {
	return &ClientSet{}
}

// CreateCatalogClient creates a new catalog API client from the given input.
func (c *ClientSet) CreateCatalogClient(i *CreateClientInput) error {
	client, err := httpClient(i)
	if err != nil {
		return err
	}

	catalog, err := NewCatalogClient(CatalogClientInput{
		Address:    i.Address,
		AppID:      i.AppID,
		AppKey:     i.AppKey,
		HttpClient: client,
	})
	if err != nil {
		return fmt.Errorf("client set: catalog: %s", err)
	}

	c.Lock()
	c.catalog = catalog
	c.Unlock()

	return nil
}

// Catalog returns the catalog client for this set, or nil when none was
// created.
func (c *ClientSet) Catalog() dep.CatalogAPI {
	c.RLock()
	defer c.RUnlock()
	if c.catalog == nil {
		return nil
	}
	return c.catalog
}

// Stop closes all idle connections for any attached clients.
func (c *ClientSet) Stop() {
	c.Lock()
	defer c.Unlock()

	switch {
	case c.catalog == nil:
	case c.catalog.httpClient == nil:
	default:
		c.catalog.httpClient.CloseIdleConnections()
	}
}

// httpClient returns the http.Client to use with the API client.
// Returns the test one if given, otherwise creates one with a pooled transport.
func httpClient(i *CreateClientInput) (client *http.Client, err error) {
	if i.HttpClient != nil {
		return i.HttpClient, nil
	}
	var transport *http.Transport
	if transport, err = newTransport(i); err == nil {
		client = &http.Client{
			Transport: transport,
		}
	}
	return client, err
}

func newTransport(i *CreateClientInput) (*http.Transport, error) {
	transport := cleanhttp.DefaultPooledTransport()
	if i.TransportDialTimeout > 0 || i.TransportDialKeepAlive > 0 {
		transport.DialContext = (&net.Dialer{
			Timeout:   i.TransportDialTimeout,
			KeepAlive: i.TransportDialKeepAlive,
		}).DialContext
	}
	if i.TransportDisableKeepAlives {
		transport.DisableKeepAlives = true
	}
	if i.TransportMaxIdleConns > 0 {
		transport.MaxIdleConns = i.TransportMaxIdleConns
	}
	if i.TransportMaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = i.TransportMaxIdleConnsPerHost
	}
	if i.TransportIdleConnTimeout > 0 {
		transport.IdleConnTimeout = i.TransportIdleConnTimeout
	}
	if i.TransportTLSHandshakeTimeout > 0 {
		transport.TLSHandshakeTimeout = i.TransportTLSHandshakeTimeout
	}

	if !i.SSLEnabled {
		return transport, nil
	}

	var tlsConfig tls.Config

	// Custom certificate or certificate and key
	if i.SSLCert != "" {
		key := i.SSLKey
		if key == "" {
			key = i.SSLCert
		}
		cert, err := tls.LoadX509KeyPair(i.SSLCert, key)
		if err != nil {
			return nil, fmt.Errorf("client set: ssl: %s", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	// Custom CA certificate
	if i.SSLCACert != "" || i.SSLCAPath != "" {
		rootConfig := &rootcerts.Config{
			CAFile: i.SSLCACert,
			CAPath: i.SSLCAPath,
		}
		if err := rootcerts.ConfigureTLS(&tlsConfig, rootConfig); err != nil {
			return nil, fmt.Errorf("client set: configuring TLS failed: %s", err)
		}
	}

	if i.ServerName != "" {
		tlsConfig.ServerName = i.ServerName
	}
	tlsConfig.InsecureSkipVerify = !i.SSLVerify

	transport.TLSClientConfig = &tlsConfig
	return transport, nil
}
