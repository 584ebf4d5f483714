// Package mongo provide MongoDB implementation of conditions.Store.
package mongo

import (
	"context"
	"fmt"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/hazeltet845/cmssw/conditions"
	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/errors"
)

var log = conf.NamedLogger("db")

// OR query tag.
const OR = "$or"

const simBeamSpotCollection = "simBeamSpot"

const (
	runKey       = "run"
	lumiBlockKey = "lumiBlock"
)

type document struct {
	ID             bson.ObjectId `bson:"_id,omitempty"`
	conditions.IOV `bson:",inline"`
	Payload        conditions.SimBeamSpot `bson:"payload"`
}

// Store keeps beam spot records in the simBeamSpot collection.
type Store struct {
	session *mgo.Session
}

// Dial connects to url and ensures the collection indices.
func Dial(url string) (*Store, error) {
	log.Info("Connecting to db ...")
	session, sessionErr := mgo.Dial(url)
	if sessionErr != nil {
		log.Infof("Connection error: %s", sessionErr.Error())
		return nil, sessionErr
	}
	log.Info("Connected")

	log.Info("Ensure indices")
	if ensureErr := ensureDBIndices(session.DB("")); ensureErr != nil {
		log.Infof("Ensure indices error: %s", ensureErr.Error())
		session.Close()
		return nil, ensureErr
	}
	session.SetSafe(&mgo.Safe{})
	log.Info("Ensure success")

	return &Store{session: session}, nil
}

// Close ...
func (s *Store) Close() {
	s.session.Close()
}

func (s *Store) collection() (*mgo.Session, *mgo.Collection) {
	session := s.session.Copy()
	return session, session.DB("").C(simBeamSpotCollection)
}

// Lookup ...
func (s *Store) Lookup(ctx context.Context, at conditions.IOV) (conditions.IOV, error) {
	if err := ctx.Err(); err != nil {
		return conditions.IOV{}, err
	}
	session, c := s.collection()
	defer session.Close()

	var doc document
	err := c.Find(lookupQuery(at)).
		Sort("-"+runKey, "-"+lumiBlockKey).
		Select(bson.M{runKey: 1, lumiBlockKey: 1}).
		One(&doc)
	if err == mgo.ErrNotFound {
		return conditions.IOV{}, fmt.Errorf("%w: no beam spot interval covers %s", errors.ErrNotFound, at)
	}
	if err != nil {
		return conditions.IOV{}, err
	}
	return doc.IOV, nil
}

// Get ...
func (s *Store) Get(ctx context.Context, iov conditions.IOV) (conditions.SimBeamSpot, error) {
	if err := ctx.Err(); err != nil {
		return conditions.SimBeamSpot{}, err
	}
	session, c := s.collection()
	defer session.Close()

	var doc document
	err := c.Find(iovSelector(iov)).One(&doc)
	if err == mgo.ErrNotFound {
		return conditions.SimBeamSpot{}, fmt.Errorf("%w: no beam spot stored for %s", errors.ErrNotFound, iov)
	}
	if err != nil {
		return conditions.SimBeamSpot{}, err
	}
	return doc.Payload, nil
}

// Put ...
func (s *Store) Put(ctx context.Context, iov conditions.IOV, record conditions.SimBeamSpot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	session, c := s.collection()
	defer session.Close()

	_, err := c.Upsert(iovSelector(iov), document{IOV: iov, Payload: record})
	return err
}

// lookupQuery matches every interval starting at or before at.
func lookupQuery(at conditions.IOV) bson.M {
	return bson.M{OR: []bson.M{
		{runKey: bson.M{"$lt": at.Run}},
		{runKey: at.Run, lumiBlockKey: bson.M{"$lte": at.LumiBlock}},
	}}
}

func iovSelector(iov conditions.IOV) bson.M {
	return bson.M{runKey: iov.Run, lumiBlockKey: iov.LumiBlock}
}

func ensureDBIndices(db *mgo.Database) error {
	return db.C(simBeamSpotCollection).EnsureIndex(mgo.Index{
		Key:    []string{runKey, lumiBlockKey},
		Unique: true,
	})
}
