package mq

const TaskCatalogSync = "catalog:sync"

type CatalogSyncPayload struct {
	Mode string `json:"mode"`
}
