package docean

import (
	"context"
)

// AccountClient provides access to account information.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
}

// ActionsClient provides access to the account-wide action history.
type ActionsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Action], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Action, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Action]
	Get(ctx context.Context, actionID int64) (*Action, error)
}

// DropletsClient provides CRUD access to droplets.
type DropletsClient interface {
	Create(ctx context.Context, request *DropletCreateRequest) (*Droplet, error)
	Get(ctx context.Context, dropletID int64) (*Droplet, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Droplet], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Droplet, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Droplet]
	ListByTag(ctx context.Context, tag string, opts *ListOptions) (*Page[Droplet], error)
	Delete(ctx context.Context, dropletID int64) error
	DeleteByTag(ctx context.Context, tag string) error
	Kernels(ctx context.Context, dropletID int64, opts *ListOptions) (*Page[Kernel], error)
	Snapshots(ctx context.Context, dropletID int64, opts *ListOptions) (*Page[Image], error)
	Backups(ctx context.Context, dropletID int64, opts *ListOptions) (*Page[Image], error)
	Neighbors(ctx context.Context, dropletID int64) ([]Droplet, error)
}

// DropletActionsClient triggers actions on a droplet and inspects their
// progress.
type DropletActionsClient interface {
	Reboot(ctx context.Context, dropletID int64) (*Action, error)
	PowerCycle(ctx context.Context, dropletID int64) (*Action, error)
	PowerOn(ctx context.Context, dropletID int64) (*Action, error)
	PowerOff(ctx context.Context, dropletID int64) (*Action, error)
	Shutdown(ctx context.Context, dropletID int64) (*Action, error)
	EnableBackups(ctx context.Context, dropletID int64) (*Action, error)
	DisableBackups(ctx context.Context, dropletID int64) (*Action, error)
	EnableIPv6(ctx context.Context, dropletID int64) (*Action, error)
	Resize(ctx context.Context, dropletID int64, sizeSlug string, resizeDisk bool) (*Action, error)
	Rename(ctx context.Context, dropletID int64, name string) (*Action, error)
	Snapshot(ctx context.Context, dropletID int64, name string) (*Action, error)
	Get(ctx context.Context, dropletID, actionID int64) (*Action, error)
	List(ctx context.Context, dropletID int64, opts *ListOptions) (*Page[Action], error)
}

// DomainsClient provides CRUD access to DNS zones.
type DomainsClient interface {
	Create(ctx context.Context, request *DomainCreateRequest) (*Domain, error)
	Get(ctx context.Context, name string) (*Domain, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Domain], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Domain, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Domain]
	Delete(ctx context.Context, name string) error
}

// DomainRecordsClient provides CRUD access to the records of a DNS zone.
type DomainRecordsClient interface {
	List(ctx context.Context, domain string, opts *ListOptions) (*Page[DomainRecord], error)
	ListAll(ctx context.Context, domain string, opts *ListOptions) ([]DomainRecord, error)
	Iterate(ctx context.Context, domain string, opts *ListOptions) *PageIterator[DomainRecord]
	Get(ctx context.Context, domain string, recordID int64) (*DomainRecord, error)
	Create(ctx context.Context, domain string, request *DomainRecordEditRequest) (*DomainRecord, error)
	Update(ctx context.Context, domain string, recordID int64, request *DomainRecordEditRequest) (*DomainRecord, error)
	Delete(ctx context.Context, domain string, recordID int64) error
}

// VolumesClient provides CRUD access to block storage volumes.
type VolumesClient interface {
	Create(ctx context.Context, request *VolumeCreateRequest) (*Volume, error)
	Get(ctx context.Context, volumeID string) (*Volume, error)
	GetByName(ctx context.Context, name, region string) (*Volume, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Volume], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Volume, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Volume]
	Delete(ctx context.Context, volumeID string) error
	DeleteByName(ctx context.Context, name, region string) error
	Snapshots(ctx context.Context, volumeID string, opts *ListOptions) (*Page[Snapshot], error)
	CreateSnapshot(ctx context.Context, volumeID string, request *SnapshotCreateRequest) (*Snapshot, error)
}

// SnapshotsClient provides access to droplet and volume snapshots.
type SnapshotsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Snapshot], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Snapshot, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Snapshot]
	ListDroplet(ctx context.Context, opts *ListOptions) (*Page[Snapshot], error)
	ListVolume(ctx context.Context, opts *ListOptions) (*Page[Snapshot], error)
	Get(ctx context.Context, snapshotID string) (*Snapshot, error)
	Delete(ctx context.Context, snapshotID string) error
}

// ImagesClient provides access to distribution, application, user and custom
// images.
type ImagesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Image], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Image, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Image]
	ListDistribution(ctx context.Context, opts *ListOptions) (*Page[Image], error)
	ListApplication(ctx context.Context, opts *ListOptions) (*Page[Image], error)
	ListUser(ctx context.Context, opts *ListOptions) (*Page[Image], error)
	Get(ctx context.Context, imageID int64) (*Image, error)
	GetBySlug(ctx context.Context, slug string) (*Image, error)
	Create(ctx context.Context, request *CustomImageCreateRequest) (*Image, error)
	Update(ctx context.Context, imageID int64, request *ImageUpdateRequest) (*Image, error)
	Delete(ctx context.Context, imageID int64) error
}

// RegionsClient lists the available datacenter regions.
type RegionsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Region], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Region, error)
}

// SizesClient lists the available droplet sizes.
type SizesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Size], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Size, error)
}

// FloatingIPsClient provides CRUD access to floating IPs.
type FloatingIPsClient interface {
	Create(ctx context.Context, request *FloatingIPCreateRequest) (*FloatingIP, error)
	Get(ctx context.Context, ip string) (*FloatingIP, error)
	List(ctx context.Context, opts *ListOptions) (*Page[FloatingIP], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]FloatingIP, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[FloatingIP]
	Delete(ctx context.Context, ip string) error
}

// FloatingIPActionsClient moves floating IPs between droplets.
type FloatingIPActionsClient interface {
	Assign(ctx context.Context, ip string, dropletID int64) (*Action, error)
	Unassign(ctx context.Context, ip string) (*Action, error)
	Get(ctx context.Context, ip string, actionID int64) (*Action, error)
}

// SSHKeysClient provides CRUD access to registered SSH keys.
type SSHKeysClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[SSHKey], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]SSHKey, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[SSHKey]
	Get(ctx context.Context, keyID int64) (*SSHKey, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*SSHKey, error)
	Create(ctx context.Context, request *SSHKeyCreateRequest) (*SSHKey, error)
	Update(ctx context.Context, keyID int64, request *SSHKeyUpdateRequest) (*SSHKey, error)
	Delete(ctx context.Context, keyID int64) error
	DeleteByFingerprint(ctx context.Context, fingerprint string) error
}

// TagsClient provides CRUD access to tags and tagging of resources.
type TagsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Tag], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Tag, error)
	Iterate(ctx context.Context, opts *ListOptions) *PageIterator[Tag]
	Get(ctx context.Context, name string) (*Tag, error)
	Create(ctx context.Context, request *TagCreateRequest) (*Tag, error)
	Delete(ctx context.Context, name string) error
	TagResources(ctx context.Context, name string, request *TagResourcesRequest) error
	UntagResources(ctx context.Context, name string, request *TagResourcesRequest) error
}

// CertificatesClient provides CRUD access to SSL certificates.
type CertificatesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Certificate], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Certificate, error)
	Get(ctx context.Context, certificateID string) (*Certificate, error)
	Create(ctx context.Context, request *CertificateCreateRequest) (*Certificate, error)
	Delete(ctx context.Context, certificateID string) error
}

// LoadBalancersClient provides CRUD access to load balancers.
type LoadBalancersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[LoadBalancer], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]LoadBalancer, error)
	Get(ctx context.Context, loadBalancerID string) (*LoadBalancer, error)
	Create(ctx context.Context, request *LoadBalancerRequest) (*LoadBalancer, error)
	Update(ctx context.Context, loadBalancerID string, request *LoadBalancerRequest) (*LoadBalancer, error)
	Delete(ctx context.Context, loadBalancerID string) error
	AddDroplets(ctx context.Context, loadBalancerID string, dropletIDs ...int64) error
	RemoveDroplets(ctx context.Context, loadBalancerID string, dropletIDs ...int64) error
}
