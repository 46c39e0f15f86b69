package main

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ugparu/mxfheader/cache"
	"github.com/ugparu/mxfheader/header"
)

type uploadResponse struct {
	Digest string `json:"digest"`
}

func (s *Server) handleUpload(c *gin.Context) {
	var body io.Reader
	if file, _, err := c.Request.FormFile("partition"); err == nil {
		defer file.Close()
		body = file
	} else {
		body = c.Request.Body
	}

	data, err := io.ReadAll(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hp, err := s.cache.Parse(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	_ = hp

	c.JSON(http.StatusOK, uploadResponse{Digest: cache.Digest256(data).String()})
}

func (s *Server) partitionFromParam(c *gin.Context) (*header.HeaderPartition, bool) {
	digest, err := cache.ParseDigest(c.Param("digest"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	hp, ok := s.cache.Get(digest)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no partition cached for this digest"})
		return nil, false
	}
	return hp, true
}

func (s *Server) handleGet(c *gin.Context) {
	hp, ok := s.partitionFromParam(c)
	if !ok {
		return
	}

	pp := hp.PartitionPack()
	c.JSON(http.StatusOK, gin.H{
		"partitionPack": gin.H{
			"majorVersion":    pp.MajorVersion,
			"minorVersion":    pp.MinorVersion,
			"thisPartition":   pp.ThisPartition,
			"headerByteCount": pp.HeaderByteCount,
			"bodySID":         pp.BodySID,
		},
		"hasPreface":          hp.Preface() != nil,
		"materialPackageCount": len(hp.MaterialPackages()),
		"sourcePackageCount":   len(hp.SourcePackages()),
		"timelineTrackCount":   len(hp.TimelineTracks()),
	})
}

type packageSummary struct {
	InstanceUID string `json:"instanceUID"`
	PackageUID  string `json:"packageUID"`
	Kind        string `json:"kind"`
}

func (s *Server) handlePackages(c *gin.Context) {
	hp, ok := s.partitionFromParam(c)
	if !ok {
		return
	}

	packages := make([]packageSummary, 0, len(hp.MaterialPackages())+len(hp.SourcePackages()))
	for _, mp := range hp.MaterialPackages() {
		packages = append(packages, packageSummary{
			InstanceUID: mp.InstanceUID().Hex(),
			PackageUID:  mp.PackageUID().Hex(),
			Kind:        "MaterialPackage",
		})
	}
	for _, sp := range hp.SourcePackages() {
		packages = append(packages, packageSummary{
			InstanceUID: sp.InstanceUID().Hex(),
			PackageUID:  sp.PackageUID().Hex(),
			Kind:        "SourcePackage",
		})
	}

	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

func (s *Server) handleDuration(c *gin.Context) {
	hp, ok := s.partitionFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"essenceDuration": hp.EssenceDuration()})
}
