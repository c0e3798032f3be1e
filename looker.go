package coursesite

import (
	"net/http"
	"time"

	"github.com/coursesite/coursesite/dep"
	idep "github.com/coursesite/coursesite/internal/dependency"
)

// DefaultCatalogAddress is the catalog API used when no address is given.
const DefaultCatalogAddress = idep.DefaultCatalogAddress

// Looker is an interface for looking up data from the catalog service.
type Looker interface {
	dep.Clients
	Stop()
}

// ClientSet focuses only on external (catalog) dependencies.
// Fulfills the Looker interface.
type ClientSet struct {
	*idep.ClientSet
}

var _ Looker = (*ClientSet)(nil)

// NewClientSet is used to create the clients used.
func NewClientSet() *ClientSet {
	return &ClientSet{
		ClientSet: idep.NewClientSet(),
	}
}

// AddCatalog creates a catalog client and adds it to the client set.
func (cs *ClientSet) AddCatalog(i CatalogInput) error {
	return cs.CreateCatalogClient(i.toInternal())
}

// Stop closes all idle connections for any attached clients.
func (cs *ClientSet) Stop() {
	if cs.ClientSet != nil {
		cs.ClientSet.Stop()
	}
}

// Input wrappers around internal structure.

// CatalogInput defines the inputs needed to configure the catalog client.
type CatalogInput struct {
	// Address is the catalog API base URL, defaults to
	// https://api.ucla.edu when empty.
	Address string
	// AppID and AppKey are the catalog credentials sent with each request.
	AppID     string
	AppKey    string
	Transport TransportInput
	// optional, principally for testing
	HttpClient *http.Client
}

func (i CatalogInput) toInternal() *idep.CreateClientInput {
	cci := &idep.CreateClientInput{
		Address:    i.Address,
		AppID:      i.AppID,
		AppKey:     i.AppKey,
		HttpClient: i.HttpClient,
	}
	return i.Transport.toInternal(cci)
}

type TransportInput struct {
	// Transport/TLS
	SSLEnabled bool
	SSLVerify  bool
	SSLCert    string
	SSLKey     string
	SSLCACert  string
	SSLCAPath  string
	ServerName string

	DialKeepAlive       time.Duration
	DialTimeout         time.Duration
	DisableKeepAlives   bool
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	TLSHandshakeTimeout time.Duration
}

func (i TransportInput) toInternal(cci *idep.CreateClientInput) *idep.CreateClientInput {
	cci.SSLEnabled = i.SSLEnabled
	cci.SSLVerify = i.SSLVerify
	cci.SSLCert = i.SSLCert
	cci.SSLKey = i.SSLKey
	cci.SSLCACert = i.SSLCACert
	cci.SSLCAPath = i.SSLCAPath
	cci.ServerName = i.ServerName
	cci.TransportDialKeepAlive = i.DialKeepAlive
	cci.TransportDialTimeout = i.DialTimeout
	cci.TransportDisableKeepAlives = i.DisableKeepAlives
	cci.TransportIdleConnTimeout = i.IdleConnTimeout
	cci.TransportMaxIdleConns = i.MaxIdleConns
	cci.TransportMaxIdleConnsPerHost = i.MaxIdleConnsPerHost
	cci.TransportTLSHandshakeTimeout = i.TLSHandshakeTimeout
	return cci
}
