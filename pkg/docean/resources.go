package docean

import (
	"encoding/json"
	"strconv"
	"time"
)

// Account represents the account owning the credential.
type Account struct {
	DropletLimit    int    `json:"droplet_limit"            yaml:"droplet_limit"`
	FloatingIPLimit int    `json:"floating_ip_limit"        yaml:"floating_ip_limit"`
	VolumeLimit     int    `json:"volume_limit"             yaml:"volume_limit"`
	Email           string `json:"email"                    yaml:"email"`
	UUID            string `json:"uuid"                     yaml:"uuid"`
	EmailVerified   bool   `json:"email_verified"           yaml:"email_verified"`
	Status          string `json:"status"                   yaml:"status"`
	StatusMessage   string `json:"status_message,omitempty" yaml:"status_message,omitempty"`
}

// Action represents an in-progress or completed event on a resource, such as
// a droplet reboot or a floating IP assignment.
type Action struct {
	ID           int64      `json:"id"                     yaml:"id"`
	Status       string     `json:"status"                 yaml:"status"`
	Type         string     `json:"type"                   yaml:"type"`
	StartedAt    *time.Time `json:"started_at"             yaml:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"           yaml:"completed_at"`
	ResourceID   int64      `json:"resource_id"            yaml:"resource_id"`
	ResourceType string     `json:"resource_type"          yaml:"resource_type"`
	Region       *Region    `json:"region,omitempty"       yaml:"region,omitempty"`
	RegionSlug   string     `json:"region_slug,omitempty"  yaml:"region_slug,omitempty"`
}

// Action states.
const (
	ActionInProgress = "in-progress"
	ActionCompleted  = "completed"
	ActionErrored    = "errored"
)

// Region represents a datacenter location.
type Region struct {
	Slug      string   `json:"slug"      yaml:"slug"`
	Name      string   `json:"name"      yaml:"name"`
	Sizes     []string `json:"sizes"     yaml:"sizes"`
	Available bool     `json:"available" yaml:"available"`
	Features  []string `json:"features"  yaml:"features"`
}

// Size represents a droplet size offering.
type Size struct {
	Slug         string   `json:"slug"          yaml:"slug"`
	Memory       int      `json:"memory"        yaml:"memory"`
	VCPUs        int      `json:"vcpus"         yaml:"vcpus"`
	Disk         int      `json:"disk"          yaml:"disk"`
	Transfer     float64  `json:"transfer"      yaml:"transfer"`
	PriceMonthly float64  `json:"price_monthly" yaml:"price_monthly"`
	PriceHourly  float64  `json:"price_hourly"  yaml:"price_hourly"`
	Regions      []string `json:"regions"       yaml:"regions"`
	Available    bool     `json:"available"     yaml:"available"`
}

// Image represents a base image: a distribution, an application one-click,
// a user snapshot, a backup, or a custom uploaded image.
type Image struct {
	ID            int64     `json:"id"                      yaml:"id"`
	Name          string    `json:"name"                    yaml:"name"`
	Type          string    `json:"type"                    yaml:"type"`
	Distribution  string    `json:"distribution"            yaml:"distribution"`
	Slug          string    `json:"slug,omitempty"          yaml:"slug,omitempty"`
	Public        bool      `json:"public"                  yaml:"public"`
	Regions       []string  `json:"regions"                 yaml:"regions"`
	MinDiskSize   int       `json:"min_disk_size,omitempty" yaml:"min_disk_size,omitempty"`
	SizeGigabytes float64   `json:"size_gigabytes,omitempty" yaml:"size_gigabytes,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"    yaml:"created_at,omitempty"`
	Description   string    `json:"description,omitempty"   yaml:"description,omitempty"`
	Tags          []string  `json:"tags,omitempty"          yaml:"tags,omitempty"`
	Status        string    `json:"status,omitempty"        yaml:"status,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// ImageRef identifies an image in a create request by numeric ID or slug.
// It marshals to whichever form is set, matching what the API accepts.
type ImageRef struct {
	ID   int64
	Slug string
}

// MarshalJSON implements json.Marshaler.
func (r ImageRef) MarshalJSON() ([]byte, error) {
	if r.ID != 0 {
		return json.Marshal(r.ID)
	}

	return json.Marshal(r.Slug)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var slug string

	err := json.Unmarshal(data, &slug)
	if err == nil {
		// A numeric string is still an ID.
		id, convErr := strconv.ParseInt(slug, 10, 64)
		if convErr == nil {
			r.ID = id

			return nil
		}

		r.Slug = slug

		return nil
	}

	return json.Unmarshal(data, &r.ID)
}

// Kernel represents a kernel available to a droplet.
type Kernel struct {
	ID      int64  `json:"id"      yaml:"id"`
	Name    string `json:"name"    yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// NetworkV4 represents an IPv4 network attached to a droplet.
type NetworkV4 struct {
	IPAddress string `json:"ip_address" yaml:"ip_address"`
	Netmask   string `json:"netmask"    yaml:"netmask"`
	Gateway   string `json:"gateway"    yaml:"gateway"`
	Type      string `json:"type"       yaml:"type"`
}

// NetworkV6 represents an IPv6 network attached to a droplet.
type NetworkV6 struct {
	IPAddress string `json:"ip_address" yaml:"ip_address"`
	Netmask   int    `json:"netmask"    yaml:"netmask"`
	Gateway   string `json:"gateway"    yaml:"gateway"`
	Type      string `json:"type"       yaml:"type"`
}

// Networks groups the networks attached to a droplet.
type Networks struct {
	V4 []NetworkV4 `json:"v4,omitempty" yaml:"v4,omitempty"`
	V6 []NetworkV6 `json:"v6,omitempty" yaml:"v6,omitempty"`
}

// Droplet represents a virtual machine instance.
type Droplet struct {
	ID          int64     `json:"id"                     yaml:"id"`
	Name        string    `json:"name"                   yaml:"name"`
	Memory      int       `json:"memory"                 yaml:"memory"`
	VCPUs       int       `json:"vcpus"                  yaml:"vcpus"`
	Disk        int       `json:"disk"                   yaml:"disk"`
	Locked      bool      `json:"locked"                 yaml:"locked"`
	Status      string    `json:"status"                 yaml:"status"`
	Kernel      *Kernel   `json:"kernel,omitempty"       yaml:"kernel,omitempty"`
	CreatedAt   time.Time `json:"created_at"             yaml:"created_at"`
	Features    []string  `json:"features,omitempty"     yaml:"features,omitempty"`
	BackupIDs   []int64   `json:"backup_ids,omitempty"   yaml:"backup_ids,omitempty"`
	SnapshotIDs []int64   `json:"snapshot_ids,omitempty" yaml:"snapshot_ids,omitempty"`
	Image       *Image    `json:"image,omitempty"        yaml:"image,omitempty"`
	Size        *Size     `json:"size,omitempty"         yaml:"size,omitempty"`
	SizeSlug    string    `json:"size_slug"              yaml:"size_slug"`
	Networks    *Networks `json:"networks,omitempty"     yaml:"networks,omitempty"`
	Region      *Region   `json:"region,omitempty"       yaml:"region,omitempty"`
	Tags        []string  `json:"tags,omitempty"         yaml:"tags,omitempty"`
	VolumeIDs   []string  `json:"volume_ids,omitempty"   yaml:"volume_ids,omitempty"`
}

// DropletCreateRequest represents a request to create a droplet.
type DropletCreateRequest struct {
	// Name is the human-readable droplet name.
	Name string `json:"name" yaml:"name"`
	// Region is the slug of the region to create the droplet in.
	Region string `json:"region" yaml:"region"`
	// Size is the slug of the size to provision.
	Size string `json:"size" yaml:"size"`
	// Image is the base image, by ID or slug.
	Image ImageRef `json:"image" yaml:"image"`
	// SSHKeys holds key IDs or fingerprints to embed in the root account.
	SSHKeys []string `json:"ssh_keys,omitempty" yaml:"ssh_keys,omitempty"`
	// Backups enables automated backups.
	Backups bool `json:"backups,omitempty" yaml:"backups,omitempty"`
	// IPv6 enables IPv6 networking.
	IPv6 bool `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
	// Monitoring installs the monitoring agent.
	Monitoring bool `json:"monitoring,omitempty" yaml:"monitoring,omitempty"`
	// UserData is a cloud-init script executed on first boot.
	UserData string `json:"user_data,omitempty" yaml:"user_data,omitempty"`
	// Volumes holds IDs of block storage volumes to attach.
	Volumes []string `json:"volumes,omitempty" yaml:"volumes,omitempty"`
	// Tags to apply at creation time.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Domain represents a DNS zone.
type Domain struct {
	Name     string `json:"name"      yaml:"name"`
	TTL      int    `json:"ttl"       yaml:"ttl"`
	ZoneFile string `json:"zone_file" yaml:"zone_file"`
}

// DomainCreateRequest represents a request to create a domain.
type DomainCreateRequest struct {
	Name string `json:"name" yaml:"name"`
	// IPAddress optionally creates an apex A record pointing at it.
	IPAddress string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
}

// DomainRecord represents one DNS record within a domain.
type DomainRecord struct {
	ID       int64  `json:"id"                 yaml:"id"`
	Type     string `json:"type"               yaml:"type"`
	Name     string `json:"name"               yaml:"name"`
	Data     string `json:"data"               yaml:"data"`
	Priority *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Port     *int   `json:"port,omitempty"     yaml:"port,omitempty"`
	TTL      int    `json:"ttl"                yaml:"ttl"`
	Weight   *int   `json:"weight,omitempty"   yaml:"weight,omitempty"`
	Flags    *int   `json:"flags,omitempty"    yaml:"flags,omitempty"`
	Tag      string `json:"tag,omitempty"      yaml:"tag,omitempty"`
}

// DomainRecordEditRequest represents a request to create or update a record.
// On update, zero-valued fields are left unchanged by the API.
type DomainRecordEditRequest struct {
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Data     string `json:"data,omitempty"     yaml:"data,omitempty"`
	Priority *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Port     *int   `json:"port,omitempty"     yaml:"port,omitempty"`
	TTL      int    `json:"ttl,omitempty"      yaml:"ttl,omitempty"`
	Weight   *int   `json:"weight,omitempty"   yaml:"weight,omitempty"`
	Flags    *int   `json:"flags,omitempty"    yaml:"flags,omitempty"`
	Tag      string `json:"tag,omitempty"      yaml:"tag,omitempty"`
}

// Volume represents a block storage volume.
type Volume struct {
	ID              string    `json:"id"                         yaml:"id"`
	Region          *Region   `json:"region,omitempty"           yaml:"region,omitempty"`
	Name            string    `json:"name"                       yaml:"name"`
	SizeGigabytes   float64   `json:"size_gigabytes"             yaml:"size_gigabytes"`
	Description     string    `json:"description,omitempty"      yaml:"description,omitempty"`
	DropletIDs      []int64   `json:"droplet_ids,omitempty"      yaml:"droplet_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"                 yaml:"created_at"`
	FilesystemType  string    `json:"filesystem_type,omitempty"  yaml:"filesystem_type,omitempty"`
	FilesystemLabel string    `json:"filesystem_label,omitempty" yaml:"filesystem_label,omitempty"`
	Tags            []string  `json:"tags,omitempty"             yaml:"tags,omitempty"`
}

// VolumeCreateRequest represents a request to create a volume.
type VolumeCreateRequest struct {
	Name          string  `json:"name"           yaml:"name"`
	Region        string  `json:"region,omitempty" yaml:"region,omitempty"`
	SizeGigabytes float64 `json:"size_gigabytes" yaml:"size_gigabytes"`
	// Description is free-form text attached to the volume.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// SnapshotID creates the volume from a snapshot; mutually exclusive with
	// Region.
	SnapshotID      string   `json:"snapshot_id,omitempty"      yaml:"snapshot_id,omitempty"`
	FilesystemType  string   `json:"filesystem_type,omitempty"  yaml:"filesystem_type,omitempty"`
	FilesystemLabel string   `json:"filesystem_label,omitempty" yaml:"filesystem_label,omitempty"`
	Tags            []string `json:"tags,omitempty"             yaml:"tags,omitempty"`
}

// Snapshot represents a snapshot of a droplet or a volume.
type Snapshot struct {
	ID            string    `json:"id"             yaml:"id"`
	Name          string    `json:"name"           yaml:"name"`
	ResourceID    string    `json:"resource_id"    yaml:"resource_id"`
	ResourceType  string    `json:"resource_type"  yaml:"resource_type"`
	Regions       []string  `json:"regions"        yaml:"regions"`
	MinDiskSize   int       `json:"min_disk_size"  yaml:"min_disk_size"`
	SizeGigabytes float64   `json:"size_gigabytes" yaml:"size_gigabytes"`
	CreatedAt     time.Time `json:"created_at"     yaml:"created_at"`
	Tags          []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// SnapshotCreateRequest represents a request to snapshot a volume.
type SnapshotCreateRequest struct {
	Name string   `json:"name"           yaml:"name"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// FloatingIP represents a publicly routable IP that can move between
// droplets in a region.
type FloatingIP struct {
	IP      string   `json:"ip"                yaml:"ip"`
	Region  *Region  `json:"region,omitempty"  yaml:"region,omitempty"`
	Droplet *Droplet `json:"droplet,omitempty" yaml:"droplet,omitempty"`
	Locked  bool     `json:"locked"            yaml:"locked"`
}

// FloatingIPCreateRequest represents a request to reserve a floating IP,
// either assigned to a droplet or reserved to a region.
type FloatingIPCreateRequest struct {
	DropletID int64  `json:"droplet_id,omitempty" yaml:"droplet_id,omitempty"`
	Region    string `json:"region,omitempty"     yaml:"region,omitempty"`
}

// SSHKey represents a public key registered with the account.
type SSHKey struct {
	ID          int64  `json:"id"          yaml:"id"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	PublicKey   string `json:"public_key"  yaml:"public_key"`
	Name        string `json:"name"        yaml:"name"`
}

// SSHKeyCreateRequest represents a request to register an SSH key.
type SSHKeyCreateRequest struct {
	Name      string `json:"name"       yaml:"name"`
	PublicKey string `json:"public_key" yaml:"public_key"`
}

// SSHKeyUpdateRequest represents a request to rename an SSH key.
type SSHKeyUpdateRequest struct {
	Name string `json:"name" yaml:"name"`
}

// Tag represents a label that can be applied to droplets, images, volumes
// and volume snapshots.
type Tag struct {
	Name      string          `json:"name"                yaml:"name"`
	Resources *TaggedResources `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// TaggedResources summarizes what a tag is applied to.
type TaggedResources struct {
	Count         int                     `json:"count"                     yaml:"count"`
	LastTaggedURI string                  `json:"last_tagged_uri,omitempty" yaml:"last_tagged_uri,omitempty"`
	Droplets      *TaggedResourcesDetail  `json:"droplets,omitempty"        yaml:"droplets,omitempty"`
	Images        *TaggedResourcesDetail  `json:"images,omitempty"          yaml:"images,omitempty"`
	Volumes       *TaggedResourcesDetail  `json:"volumes,omitempty"         yaml:"volumes,omitempty"`
}

// TaggedResourcesDetail counts tagged resources of one type.
type TaggedResourcesDetail struct {
	Count         int    `json:"count"                     yaml:"count"`
	LastTaggedURI string `json:"last_tagged_uri,omitempty" yaml:"last_tagged_uri,omitempty"`
}

// TagCreateRequest represents a request to create a tag.
type TagCreateRequest struct {
	Name string `json:"name" yaml:"name"`
}

// TagResource identifies one resource to tag or untag.
type TagResource struct {
	ID   string `json:"resource_id"   yaml:"resource_id"`
	Type string `json:"resource_type" yaml:"resource_type"`
}

// TagResourcesRequest represents a request to tag or untag resources.
type TagResourcesRequest struct {
	Resources []TagResource `json:"resources" yaml:"resources"`
}

// Certificate represents an SSL certificate usable by load balancers.
type Certificate struct {
	ID              string    `json:"id"               yaml:"id"`
	Name            string    `json:"name"             yaml:"name"`
	NotAfter        string    `json:"not_after"        yaml:"not_after"`
	SHA1Fingerprint string    `json:"sha1_fingerprint" yaml:"sha1_fingerprint"`
	DNSNames        []string  `json:"dns_names"        yaml:"dns_names"`
	State           string    `json:"state"            yaml:"state"`
	Type            string    `json:"type"             yaml:"type"`
	CreatedAt       time.Time `json:"created_at"       yaml:"created_at"`
}

// CertificateCreateRequest represents a request to upload or issue a
// certificate.
type CertificateCreateRequest struct {
	Name             string   `json:"name"                        yaml:"name"`
	Type             string   `json:"type,omitempty"              yaml:"type,omitempty"`
	PrivateKey       string   `json:"private_key,omitempty"       yaml:"private_key,omitempty"`
	LeafCertificate  string   `json:"leaf_certificate,omitempty"  yaml:"leaf_certificate,omitempty"`
	CertificateChain string   `json:"certificate_chain,omitempty" yaml:"certificate_chain,omitempty"`
	DNSNames         []string `json:"dns_names,omitempty"         yaml:"dns_names,omitempty"`
}

// ForwardingRule maps a load balancer entry port to a target port.
type ForwardingRule struct {
	EntryProtocol  string `json:"entry_protocol"           yaml:"entry_protocol"`
	EntryPort      int    `json:"entry_port"               yaml:"entry_port"`
	TargetProtocol string `json:"target_protocol"          yaml:"target_protocol"`
	TargetPort     int    `json:"target_port"              yaml:"target_port"`
	CertificateID  string `json:"certificate_id,omitempty" yaml:"certificate_id,omitempty"`
	TLSPassthrough bool   `json:"tls_passthrough,omitempty" yaml:"tls_passthrough,omitempty"`
}

// HealthCheck configures how a load balancer probes its targets.
type HealthCheck struct {
	Protocol               string `json:"protocol"                  yaml:"protocol"`
	Port                   int    `json:"port"                      yaml:"port"`
	Path                   string `json:"path,omitempty"            yaml:"path,omitempty"`
	CheckIntervalSeconds   int    `json:"check_interval_seconds"    yaml:"check_interval_seconds"`
	ResponseTimeoutSeconds int    `json:"response_timeout_seconds"  yaml:"response_timeout_seconds"`
	HealthyThreshold       int    `json:"healthy_threshold"         yaml:"healthy_threshold"`
	UnhealthyThreshold     int    `json:"unhealthy_threshold"       yaml:"unhealthy_threshold"`
}

// StickySessions configures load balancer session affinity.
type StickySessions struct {
	Type             string `json:"type"                         yaml:"type"`
	CookieName       string `json:"cookie_name,omitempty"        yaml:"cookie_name,omitempty"`
	CookieTTLSeconds int    `json:"cookie_ttl_seconds,omitempty" yaml:"cookie_ttl_seconds,omitempty"`
}

// LoadBalancer represents a managed load balancer.
type LoadBalancer struct {
	ID                  string           `json:"id"                              yaml:"id"`
	Name                string           `json:"name"                            yaml:"name"`
	IP                  string           `json:"ip"                              yaml:"ip"`
	Algorithm           string           `json:"algorithm"                       yaml:"algorithm"`
	Status              string           `json:"status"                          yaml:"status"`
	CreatedAt           time.Time        `json:"created_at"                      yaml:"created_at"`
	ForwardingRules     []ForwardingRule `json:"forwarding_rules"                yaml:"forwarding_rules"`
	HealthCheck         *HealthCheck     `json:"health_check,omitempty"          yaml:"health_check,omitempty"`
	StickySessions      *StickySessions  `json:"sticky_sessions,omitempty"       yaml:"sticky_sessions,omitempty"`
	Region              *Region          `json:"region,omitempty"                yaml:"region,omitempty"`
	DropletIDs          []int64          `json:"droplet_ids,omitempty"           yaml:"droplet_ids,omitempty"`
	Tag                 string           `json:"tag,omitempty"                   yaml:"tag,omitempty"`
	RedirectHTTPToHTTPS bool             `json:"redirect_http_to_https,omitempty" yaml:"redirect_http_to_https,omitempty"`
}

// LoadBalancerRequest represents a request to create or update a load
// balancer.
type LoadBalancerRequest struct {
	Name                string           `json:"name"                            yaml:"name"`
	Algorithm           string           `json:"algorithm,omitempty"             yaml:"algorithm,omitempty"`
	Region              string           `json:"region"                          yaml:"region"`
	ForwardingRules     []ForwardingRule `json:"forwarding_rules"                yaml:"forwarding_rules"`
	HealthCheck         *HealthCheck     `json:"health_check,omitempty"          yaml:"health_check,omitempty"`
	StickySessions      *StickySessions  `json:"sticky_sessions,omitempty"       yaml:"sticky_sessions,omitempty"`
	DropletIDs          []int64          `json:"droplet_ids,omitempty"           yaml:"droplet_ids,omitempty"`
	Tag                 string           `json:"tag,omitempty"                   yaml:"tag,omitempty"`
	RedirectHTTPToHTTPS bool             `json:"redirect_http_to_https,omitempty" yaml:"redirect_http_to_https,omitempty"`
}

// ImageUpdateRequest represents a request to update image metadata.
type ImageUpdateRequest struct {
	Name         string `json:"name,omitempty"         yaml:"name,omitempty"`
	Distribution string `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	Description  string `json:"description,omitempty"  yaml:"description,omitempty"`
}

// CustomImageCreateRequest represents a request to import a custom image
// from a URL.
type CustomImageCreateRequest struct {
	Name         string   `json:"name"                   yaml:"name"`
	URL          string   `json:"url"                    yaml:"url"`
	Region       string   `json:"region"                 yaml:"region"`
	Distribution string   `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	Description  string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"         yaml:"tags,omitempty"`
}
